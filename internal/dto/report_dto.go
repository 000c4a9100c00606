package dto

import "time"

// ─── AI report generation ────────────────────────────────────────────────────

type GenerateReportRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=500"`
}

type ReportResponse struct {
	ID        string      `json:"id"`
	Prompt    string      `json:"prompt"`
	QueryKind string      `json:"query_kind"`
	Title     string      `json:"title"`
	Insights  string      `json:"insights"`
	Data      interface{} `json:"data"`
	CreatedAt time.Time   `json:"created_at"`
}

// ─── AI suggestions ──────────────────────────────────────────────────────────

type AssetAnalysisRequest struct {
	AssetName   string `json:"asset_name"  validate:"required,min=2,max=160"`
	Description string `json:"description" validate:"max=2000"`
}

type AssetAnalysisResponse struct {
	SuggestedCategory   string `json:"suggested_category"`
	UsefulLifeYears     int    `json:"useful_life_years"`
	ResidualPct         int    `json:"residual_pct"`
	MaintenanceType     string `json:"maintenance_type"`
	MaintenanceInterval int    `json:"maintenance_interval_months"`
	Fallback            bool   `json:"fallback"` // true when LLM parsing failed and defaults were used
}

type CategorySuggestionRequest struct {
	AssetName  string   `json:"asset_name" validate:"required,min=2,max=160"`
	Categories []string `json:"categories" validate:"required,min=1,dive,min=1"`
}

type CategorySuggestionResponse struct {
	Category        string `json:"category"`
	UsefulLifeYears int    `json:"useful_life_years"`
	Fallback        bool   `json:"fallback"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardStats struct {
	AssetsByStatus     map[string]int64 `json:"assets_by_status"`
	TotalPurchaseValue string           `json:"total_purchase_value"`
	TotalBookValue     string           `json:"total_book_value"`
	OpenMaintenances   int64            `json:"open_maintenances"`
	LowStockParts      int64            `json:"low_stock_parts"`
}

// ─── Notifications ───────────────────────────────────────────────────────────

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ─── Documents ───────────────────────────────────────────────────────────────

type DocumentResponse struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"asset_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
