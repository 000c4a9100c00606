package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/rs/zerolog/log"
)

// AIService answers the two suggestion endpoints. The LLM is advisory only:
// any provider failure or unparseable reply falls back to hardcoded defaults,
// so these endpoints never fail a user action because of the provider.
type AIService interface {
	AnalyzeAsset(ctx context.Context, req dto.AssetAnalysisRequest) (*dto.AssetAnalysisResponse, error)
	SuggestCategory(ctx context.Context, req dto.CategorySuggestionRequest) (*dto.CategorySuggestionResponse, error)
}

type aiService struct {
	llm *infra.LLMClient
	cb  *infra.CircuitBreaker
}

func NewAIService(llm *infra.LLMClient, cb *infra.CircuitBreaker) AIService {
	return &aiService{llm: llm, cb: cb}
}

const analysisSystemPrompt = `You are an assistant for a fixed-asset management system.
Reply with a single JSON object, no prose, with keys:
"suggested_category" (string), "useful_life_years" (integer 1-50),
"residual_pct" (integer 0-50), "maintenance_type" (one of "preventiva","corretiva","emergencial"),
"maintenance_interval_months" (integer 1-36).`

func (s *aiService) AnalyzeAsset(ctx context.Context, req dto.AssetAnalysisRequest) (*dto.AssetAnalysisResponse, error) {
	prompt := fmt.Sprintf("Asset name: %s\nDescription: %s", req.AssetName, req.Description)

	var content string
	err := s.cb.Execute(func() error {
		var callErr error
		content, callErr = s.llm.Complete(ctx, []infra.ChatMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: prompt},
		})
		return callErr
	})
	if err != nil {
		log.Warn().Err(err).Str("asset", req.AssetName).Msg("asset analysis: LLM unavailable, using defaults")
		return defaultAnalysis(), nil
	}

	var parsed struct {
		SuggestedCategory   string `json:"suggested_category"`
		UsefulLifeYears     int    `json:"useful_life_years"`
		ResidualPct         int    `json:"residual_pct"`
		MaintenanceType     string `json:"maintenance_type"`
		MaintenanceInterval int    `json:"maintenance_interval_months"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil ||
		parsed.SuggestedCategory == "" || parsed.UsefulLifeYears <= 0 {
		log.Warn().Str("asset", req.AssetName).Msg("asset analysis: unparseable LLM reply, using defaults")
		return defaultAnalysis(), nil
	}

	if !validMaintenanceType(parsed.MaintenanceType) {
		parsed.MaintenanceType = model.MaintenanceTypePreventive
	}
	if parsed.MaintenanceInterval <= 0 {
		parsed.MaintenanceInterval = 6
	}

	return &dto.AssetAnalysisResponse{
		SuggestedCategory:   parsed.SuggestedCategory,
		UsefulLifeYears:     parsed.UsefulLifeYears,
		ResidualPct:         parsed.ResidualPct,
		MaintenanceType:     parsed.MaintenanceType,
		MaintenanceInterval: parsed.MaintenanceInterval,
	}, nil
}

func (s *aiService) SuggestCategory(ctx context.Context, req dto.CategorySuggestionRequest) (*dto.CategorySuggestionResponse, error) {
	prompt := fmt.Sprintf(
		"Asset name: %s\nAvailable categories: %s\nReply with a single JSON object: {\"category\": <one of the available categories>, \"useful_life_years\": <integer>}",
		req.AssetName, strings.Join(req.Categories, ", "))

	var content string
	err := s.cb.Execute(func() error {
		var callErr error
		content, callErr = s.llm.Complete(ctx, []infra.ChatMessage{
			{Role: "user", Content: prompt},
		})
		return callErr
	})
	if err != nil {
		log.Warn().Err(err).Str("asset", req.AssetName).Msg("category suggestion: LLM unavailable, using defaults")
		return defaultSuggestion(req.Categories), nil
	}

	var parsed struct {
		Category        string `json:"category"`
		UsefulLifeYears int    `json:"useful_life_years"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil || parsed.Category == "" {
		return defaultSuggestion(req.Categories), nil
	}

	// The model must pick from the provided list; anything else is a miss.
	if !containsFold(req.Categories, parsed.Category) {
		return defaultSuggestion(req.Categories), nil
	}
	if parsed.UsefulLifeYears <= 0 {
		parsed.UsefulLifeYears = 5
	}

	return &dto.CategorySuggestionResponse{
		Category:        parsed.Category,
		UsefulLifeYears: parsed.UsefulLifeYears,
	}, nil
}

func defaultAnalysis() *dto.AssetAnalysisResponse {
	return &dto.AssetAnalysisResponse{
		SuggestedCategory:   "Equipamentos",
		UsefulLifeYears:     5,
		ResidualPct:         10,
		MaintenanceType:     model.MaintenanceTypePreventive,
		MaintenanceInterval: 6,
		Fallback:            true,
	}
}

func defaultSuggestion(categories []string) *dto.CategorySuggestionResponse {
	category := "Equipamentos"
	if len(categories) > 0 {
		category = categories[0]
	}
	return &dto.CategorySuggestionResponse{
		Category:        category,
		UsefulLifeYears: 5,
		Fallback:        true,
	}
}

// extractJSON strips markdown fences and surrounding prose the provider may
// wrap around the JSON object.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

func validMaintenanceType(t string) bool {
	switch t {
	case model.MaintenanceTypePreventive, model.MaintenanceTypeCorrective, model.MaintenanceTypeEmergency:
		return true
	}
	return false
}

func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.EqualFold(s, target) {
			return true
		}
	}
	return false
}
