package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Canned report kinds. The prompt never becomes SQL; it only selects which
// server-defined aggregation runs.
const (
	reportAssetsByCategory = "assets_by_category"
	reportMaintenanceCost  = "maintenance_cost"
	reportDepreciation     = "depreciation_summary"
)

const dashboardCacheTTL = 2 * time.Minute

type ReportService interface {
	Generate(ctx context.Context, companyID, ownerID uuid.UUID, req dto.GenerateReportRequest) (*dto.ReportResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]dto.ReportResponse, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*dto.ReportResponse, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	DashboardStats(ctx context.Context, companyID uuid.UUID) (*dto.DashboardStats, error)
}

type reportService struct {
	repo      repository.ReportRepository
	assetRepo repository.AssetRepository
	partRepo  repository.SparePartRepository
	llm       *infra.LLMClient
	cb        *infra.CircuitBreaker
	rdb       *redis.Client
}

func NewReportService(
	repo repository.ReportRepository,
	assetRepo repository.AssetRepository,
	partRepo repository.SparePartRepository,
	llm *infra.LLMClient,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
) ReportService {
	return &reportService{repo: repo, assetRepo: assetRepo, partRepo: partRepo, llm: llm, cb: cb, rdb: rdb}
}

// depreciationSummaryRow aggregates the register by category, computed in Go
// so book values match the rest of the system.
type depreciationSummaryRow struct {
	Category      string          `json:"category"`
	AssetCount    int             `json:"asset_count"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
	BookTotal     decimal.Decimal `json:"book_total"`
	Depreciation  decimal.Decimal `json:"depreciation_total"`
}

func (s *reportService) Generate(ctx context.Context, companyID, ownerID uuid.UUID, req dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	kind := matchReportKind(req.Prompt)

	var rows interface{}
	var err error
	switch kind {
	case reportMaintenanceCost:
		rows, err = s.repo.MaintenanceCostByMonth(ctx, companyID)
	case reportDepreciation:
		rows, err = s.depreciationSummary(ctx, companyID)
	default:
		rows, err = s.repo.AssetsByCategory(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	title, insights := s.narrate(ctx, req.Prompt, kind, rows)

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	saved := &model.SavedReport{
		OwnerID:   ownerID,
		Prompt:    req.Prompt,
		QueryKind: kind,
		Title:     title,
		Insights:  insights,
		Data:      data,
	}
	if err := s.repo.Save(ctx, saved); err != nil {
		return nil, err
	}

	return &dto.ReportResponse{
		ID:        saved.ID.String(),
		Prompt:    saved.Prompt,
		QueryKind: saved.QueryKind,
		Title:     saved.Title,
		Insights:  saved.Insights,
		Data:      rows,
		CreatedAt: saved.CreatedAt,
	}, nil
}

func (s *reportService) List(ctx context.Context, ownerID uuid.UUID) ([]dto.ReportResponse, error) {
	reports, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		resp[i] = *savedReportToResponse(&reports[i])
	}
	return resp, nil
}

func (s *reportService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*dto.ReportResponse, error) {
	r, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return savedReportToResponse(r), nil
}

func (s *reportService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *reportService) DashboardStats(ctx context.Context, companyID uuid.UUID) (*dto.DashboardStats, error) {
	cacheKey := "dashboard:" + companyID.String()

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var stats dto.DashboardStats
		if json.Unmarshal([]byte(cached), &stats) == nil {
			return &stats, nil
		}
	}

	statusRows, err := s.repo.AssetStatusCounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]int64, len(statusRows))
	for _, r := range statusRows {
		byStatus[r.Status] = r.Count
	}

	assets, err := s.assetRepo.ListAll(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	totalPurchase := decimal.Zero
	totalBook := decimal.Zero
	for i := range assets {
		bv := ComputeBookValue(assets[i].PurchaseValue, assets[i].ResidualValue, assets[i].UsefulLifeYears, assets[i].PurchaseDate, now)
		totalPurchase = totalPurchase.Add(assets[i].PurchaseValue)
		totalBook = totalBook.Add(bv.BookValue)
	}

	openMaint, err := s.repo.CountOpenMaintenances(ctx, companyID)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.partRepo.CountLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		AssetsByStatus:     byStatus,
		TotalPurchaseValue: totalPurchase.StringFixed(2),
		TotalBookValue:     totalBook.StringFixed(2),
		OpenMaintenances:   openMaint,
		LowStockParts:      lowStock,
	}

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, encoded, dashboardCacheTTL).Err(); err != nil {
			log.Debug().Err(err).Msg("dashboard: cache write failed")
		}
	}

	return stats, nil
}

func (s *reportService) depreciationSummary(ctx context.Context, companyID uuid.UUID) ([]depreciationSummaryRow, error) {
	assets, err := s.assetRepo.ListAll(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	byCategory := make(map[string]*depreciationSummaryRow)
	order := make([]string, 0)

	for i := range assets {
		a := &assets[i]
		key := a.CategoryID.String()
		if a.Category != nil {
			key = a.Category.Name
		}
		row, ok := byCategory[key]
		if !ok {
			row = &depreciationSummaryRow{Category: key}
			byCategory[key] = row
			order = append(order, key)
		}
		bv := ComputeBookValue(a.PurchaseValue, a.ResidualValue, a.UsefulLifeYears, a.PurchaseDate, now)
		row.AssetCount++
		row.PurchaseTotal = row.PurchaseTotal.Add(a.PurchaseValue)
		row.BookTotal = row.BookTotal.Add(bv.BookValue)
		row.Depreciation = row.Depreciation.Add(bv.AccumulatedDepreciation)
	}

	rows := make([]depreciationSummaryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byCategory[key])
	}
	return rows, nil
}

// narrate asks the LLM for a title and insights over the aggregated rows.
// Provider failures degrade to a generated title and a canned insight line.
func (s *reportService) narrate(ctx context.Context, prompt, kind string, rows interface{}) (string, string) {
	data, err := json.Marshal(rows)
	if err != nil {
		return fallbackTitle(kind), "Report generated from aggregated data."
	}

	llmPrompt := fmt.Sprintf(
		"User asked: %q\nAggregated data (JSON): %s\nReply with a single JSON object: {\"title\": <short report title>, \"insights\": <2-4 sentences of insights>}",
		prompt, string(data))

	var content string
	err = s.cb.Execute(func() error {
		var callErr error
		content, callErr = s.llm.Complete(ctx, []infra.ChatMessage{
			{Role: "user", Content: llmPrompt},
		})
		return callErr
	})
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("report: LLM unavailable, using fallback narration")
		return fallbackTitle(kind), "Report generated from aggregated data."
	}

	var parsed struct {
		Title    string `json:"title"`
		Insights string `json:"insights"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil || parsed.Title == "" {
		return fallbackTitle(kind), "Report generated from aggregated data."
	}
	if parsed.Insights == "" {
		parsed.Insights = "Report generated from aggregated data."
	}
	return parsed.Title, parsed.Insights
}

// matchReportKind picks the canned aggregation by prompt keywords; unknown
// prompts get the asset overview.
func matchReportKind(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "mainten") || strings.Contains(p, "manuten") || strings.Contains(p, "repair"):
		return reportMaintenanceCost
	case strings.Contains(p, "deprec") || strings.Contains(p, "book value") || strings.Contains(p, "valor contábil"):
		return reportDepreciation
	default:
		return reportAssetsByCategory
	}
}

func fallbackTitle(kind string) string {
	switch kind {
	case reportMaintenanceCost:
		return "Maintenance Cost Summary"
	case reportDepreciation:
		return "Depreciation Summary"
	default:
		return "Assets by Category"
	}
}

func savedReportToResponse(r *model.SavedReport) *dto.ReportResponse {
	var data interface{}
	_ = json.Unmarshal(r.Data, &data)
	return &dto.ReportResponse{
		ID:        r.ID.String(),
		Prompt:    r.Prompt,
		QueryKind: r.QueryKind,
		Title:     r.Title,
		Insights:  r.Insights,
		Data:      data,
		CreatedAt: r.CreatedAt,
	}
}
