package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider stands in for an OpenAI-compatible chat-completion endpoint
// and answers every request with the configured content.
func fakeProvider(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":` + content + `}}]}`))
		}
	}))
}

func newAIService(serverURL string) AIService {
	llm := infra.NewLLMClient(serverURL, "test-key", "gpt-4o-mini")
	return NewAIService(llm, infra.NewCircuitBreaker(infra.DefaultCBConfig()))
}

func TestAnalyzeAsset_ParsesProviderReply(t *testing.T) {
	reply := `"{\"suggested_category\":\"Veículos\",\"useful_life_years\":8,\"residual_pct\":20,\"maintenance_type\":\"preventiva\",\"maintenance_interval_months\":12}"`
	server := fakeProvider(t, http.StatusOK, reply)
	defer server.Close()

	resp, err := newAIService(server.URL).AnalyzeAsset(context.Background(), dto.AssetAnalysisRequest{
		AssetName: "Caminhão Volvo FH", Description: "Heavy duty truck",
	})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	assert.Equal(t, "Veículos", resp.SuggestedCategory)
	assert.Equal(t, 8, resp.UsefulLifeYears)
	assert.Equal(t, 20, resp.ResidualPct)
	assert.Equal(t, model.MaintenanceTypePreventive, resp.MaintenanceType)
	assert.Equal(t, 12, resp.MaintenanceInterval)
}

func TestAnalyzeAsset_StripsMarkdownFences(t *testing.T) {
	reply := `"Here you go:\n` + "```json" + `\n{\"suggested_category\":\"Ferramentas\",\"useful_life_years\":3,\"residual_pct\":5,\"maintenance_type\":\"corretiva\",\"maintenance_interval_months\":6}\n` + "```" + `"`
	server := fakeProvider(t, http.StatusOK, reply)
	defer server.Close()

	resp, err := newAIService(server.URL).AnalyzeAsset(context.Background(), dto.AssetAnalysisRequest{
		AssetName: "Furadeira",
	})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	assert.Equal(t, "Ferramentas", resp.SuggestedCategory)
	assert.Equal(t, model.MaintenanceTypeCorrective, resp.MaintenanceType)
}

func TestAnalyzeAsset_ProviderDownFallsBack(t *testing.T) {
	server := fakeProvider(t, http.StatusInternalServerError, "")
	defer server.Close()

	resp, err := newAIService(server.URL).AnalyzeAsset(context.Background(), dto.AssetAnalysisRequest{
		AssetName: "Empilhadeira",
	})
	require.NoError(t, err)

	assert.True(t, resp.Fallback)
	assert.Equal(t, "Equipamentos", resp.SuggestedCategory)
	assert.Equal(t, 5, resp.UsefulLifeYears)
	assert.Equal(t, model.MaintenanceTypePreventive, resp.MaintenanceType)
}

func TestAnalyzeAsset_GarbageReplyFallsBack(t *testing.T) {
	server := fakeProvider(t, http.StatusOK, `"I cannot help with that."`)
	defer server.Close()

	resp, err := newAIService(server.URL).AnalyzeAsset(context.Background(), dto.AssetAnalysisRequest{
		AssetName: "Gerador",
	})
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
}

func TestSuggestCategory_MustPickFromList(t *testing.T) {
	server := fakeProvider(t, http.StatusOK, `"{\"category\":\"Imóveis\",\"useful_life_years\":25}"`)
	defer server.Close()

	categories := []string{"Veículos", "Máquinas"}
	resp, err := newAIService(server.URL).SuggestCategory(context.Background(), dto.CategorySuggestionRequest{
		AssetName:  "Galpão",
		Categories: categories,
	})
	require.NoError(t, err)

	// "Imóveis" is not in the list, so the first category wins as a fallback.
	assert.True(t, resp.Fallback)
	assert.Equal(t, "Veículos", resp.Category)
	assert.Equal(t, 5, resp.UsefulLifeYears)
}

func TestSuggestCategory_CaseInsensitiveMatch(t *testing.T) {
	server := fakeProvider(t, http.StatusOK, `"{\"category\":\"máquinas\",\"useful_life_years\":10}"`)
	defer server.Close()

	resp, err := newAIService(server.URL).SuggestCategory(context.Background(), dto.CategorySuggestionRequest{
		AssetName:  "Torno CNC",
		Categories: []string{"Veículos", "Máquinas"},
	})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	assert.Equal(t, "máquinas", resp.Category)
	assert.Equal(t, 10, resp.UsefulLifeYears)
}
