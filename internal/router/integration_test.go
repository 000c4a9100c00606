//go:build integration

package router_test

// Integration tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/config"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	db     *gorm.DB
	deptID string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("assetflow_test"),
		tcPostgres.WithUsername("assetflow"),
		tcPostgres.WithPassword("assetflow"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		LLMAPIURL:          "http://localhost:9", // unreachable — AI endpoints fall back
		LLMModel:           "gpt-4o-mini",
		WorkerPoolSize:     1,
		MaintenanceDueDays: 7,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	store, err := infra.NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	// Seed tenant + admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	company := model.Company{Name: "AssetFlow Test Co"}
	require.NoError(t, db.Create(&company).Error)
	dept := model.Department{CompanyID: company.ID, Name: "Operations", Active: true}
	require.NoError(t, db.Create(&dept).Error)
	admin := model.Profile{
		Email:        "admin@e2e.test",
		Name:         "Admin E2E",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CompanyID:    company.ID,
		Active:       true,
	}
	require.NoError(t, db.Create(&admin).Error)

	llm := infra.NewLLMClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel)
	llmCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	r := router.New(cfg, db, rdb, llm, llmCB, store)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@e2e.test", "password": "admin1234"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		db:     db,
		deptID: dept.ID.String(),
	}
}

func (env *testEnv) createCategory(t *testing.T) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/categories",
		jsonBody(t, map[string]any{
			"name":                      "Machinery",
			"default_useful_life_years": 10,
			"default_residual_pct":      10,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cat struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &cat)
	return cat.ID
}

func (env *testEnv) createAsset(t *testing.T, categoryID, code string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/assets",
		jsonBody(t, map[string]any{
			"code":           code,
			"name":           "CNC Lathe",
			"category_id":    categoryID,
			"department_id":  env.deptID,
			"purchase_value": "20000",
			"purchase_date":  time.Now().AddDate(-2, 0, 0).Format(time.RFC3339),
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var asset struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &asset)
	return asset.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Register an asset, resolve it via QR scan, and check derived book value.
func TestIntegration_AssetLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	categoryID := env.createCategory(t)
	assetID := env.createAsset(t, categoryID, "AST-001")

	scanResp := do(t, env.server, "GET", "/v1/assets/scan/AST-001", nil, env.token)
	require.Equal(t, http.StatusOK, scanResp.StatusCode)
	var scanned struct {
		ID        string `json:"id"`
		BookValue string `json:"book_value"`
	}
	decodeJSON(t, scanResp, &scanned)
	assert.Equal(t, assetID, scanned.ID)
	assert.NotEmpty(t, scanned.BookValue)

	qrResp := do(t, env.server, "GET", "/v1/assets/"+assetID+"/qr", nil, env.token)
	require.Equal(t, http.StatusOK, qrResp.StatusCode)
	assert.Equal(t, "image/png", qrResp.Header.Get("Content-Type"))
	qrResp.Body.Close()

	// Dispose and verify the terminal state sticks.
	dispResp := do(t, env.server, "POST", "/v1/assets/"+assetID+"/dispose",
		jsonBody(t, map[string]any{
			"method":        "sale",
			"disposal_date": time.Now().Format(time.RFC3339),
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, dispResp.StatusCode)
	var disposal struct {
		BookValueAt string `json:"book_value_at"`
	}
	decodeJSON(t, dispResp, &disposal)
	assert.NotEmpty(t, disposal.BookValueAt)

	again := do(t, env.server, "POST", "/v1/assets/"+assetID+"/dispose",
		jsonBody(t, map[string]any{
			"method":        "scrap",
			"disposal_date": time.Now().Format(time.RFC3339),
		}),
		env.token,
	)
	assert.Equal(t, http.StatusConflict, again.StatusCode)
	again.Body.Close()

	auditResp := do(t, env.server, "GET", "/v1/assets/"+assetID+"/audit", nil, env.token)
	require.Equal(t, http.StatusOK, auditResp.StatusCode)
	var entries []map[string]any
	decodeJSON(t, auditResp, &entries)
	assert.GreaterOrEqual(t, len(entries), 2) // create + dispose
}

// Walk a maintenance through its workflow and consume stock atomically.
func TestIntegration_MaintenanceWorkflow(t *testing.T) {
	env := setupTestEnv(t)
	categoryID := env.createCategory(t)
	assetID := env.createAsset(t, categoryID, "AST-002")

	partResp := do(t, env.server, "POST", "/v1/parts",
		jsonBody(t, map[string]any{
			"code":      "PRT-01",
			"name":      "Drive Belt",
			"unit_cost": "45.50",
			"stock":     2,
			"min_stock": 1,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, partResp.StatusCode)
	var part struct {
		ID string `json:"id"`
	}
	decodeJSON(t, partResp, &part)

	maintResp := do(t, env.server, "POST", "/v1/maintenances",
		jsonBody(t, map[string]any{
			"asset_id":       assetID,
			"type":           "preventiva",
			"description":    "belt replacement",
			"scheduled_date": time.Now().AddDate(0, 0, 1).Format(time.RFC3339),
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, maintResp.StatusCode)
	var maint struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, maintResp, &maint)
	require.Equal(t, "agendada", maint.Status)

	// Skipping em_andamento is rejected.
	skip := do(t, env.server, "PATCH", "/v1/maintenances/"+maint.ID+"/status",
		jsonBody(t, map[string]string{"status": "concluida"}), env.token)
	assert.Equal(t, http.StatusConflict, skip.StatusCode)
	skip.Body.Close()

	start := do(t, env.server, "PATCH", "/v1/maintenances/"+maint.ID+"/status",
		jsonBody(t, map[string]string{"status": "em_andamento"}), env.token)
	require.Equal(t, http.StatusOK, start.StatusCode)
	start.Body.Close()

	// The asset mirrors the workflow.
	assetResp := do(t, env.server, "GET", "/v1/assets/"+assetID, nil, env.token)
	require.Equal(t, http.StatusOK, assetResp.StatusCode)
	var asset struct {
		Status string `json:"status"`
	}
	decodeJSON(t, assetResp, &asset)
	assert.Equal(t, "maintenance", asset.Status)

	consume := do(t, env.server, "POST", "/v1/maintenances/"+maint.ID+"/parts",
		jsonBody(t, map[string]any{"spare_part_id": part.ID, "quantity": 2}), env.token)
	require.Equal(t, http.StatusCreated, consume.StatusCode)
	consume.Body.Close()

	// Stock is exhausted now; the next consumption conflicts.
	conflict := do(t, env.server, "POST", "/v1/maintenances/"+maint.ID+"/parts",
		jsonBody(t, map[string]any{"spare_part_id": part.ID, "quantity": 1}), env.token)
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)
	conflict.Body.Close()

	finish := do(t, env.server, "PATCH", "/v1/maintenances/"+maint.ID+"/status",
		jsonBody(t, map[string]string{"status": "concluida"}), env.token)
	require.Equal(t, http.StatusOK, finish.StatusCode)
	var finished struct {
		CompletedDate *time.Time `json:"completed_date"`
	}
	decodeJSON(t, finish, &finished)
	assert.NotNil(t, finished.CompletedDate)
}

// Report generation routes a maintenance-cost prompt through the monthly
// aggregation, persists the report, and serves it back — with the LLM
// unreachable, the title falls back deterministically.
func TestIntegration_ReportGeneration(t *testing.T) {
	env := setupTestEnv(t)
	categoryID := env.createCategory(t)
	assetID := env.createAsset(t, categoryID, "AST-010")

	maintResp := do(t, env.server, "POST", "/v1/maintenances",
		jsonBody(t, map[string]any{
			"asset_id":       assetID,
			"type":           "corretiva",
			"description":    "bearing swap",
			"scheduled_date": time.Now().Format(time.RFC3339),
			"cost":           "350.00",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, maintResp.StatusCode)
	maintResp.Body.Close()

	genResp := do(t, env.server, "POST", "/v1/reports",
		jsonBody(t, map[string]string{"prompt": "custo de manutenção por mês"}), env.token)
	require.Equal(t, http.StatusCreated, genResp.StatusCode)
	var report struct {
		ID        string `json:"id"`
		QueryKind string `json:"query_kind"`
		Title     string `json:"title"`
		Data      []struct {
			Month     string `json:"month"`
			Count     int64  `json:"count"`
			TotalCost string `json:"total_cost"`
		} `json:"data"`
	}
	decodeJSON(t, genResp, &report)
	assert.Equal(t, "maintenance_cost", report.QueryKind)
	assert.NotEmpty(t, report.Title)
	require.Len(t, report.Data, 1)
	assert.NotEmpty(t, report.Data[0].Month)
	assert.Equal(t, int64(1), report.Data[0].Count)
	assert.Contains(t, report.Data[0].TotalCost, "350")

	// The saved report is retrievable by its owner.
	getResp := do(t, env.server, "GET", "/v1/reports/"+report.ID, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var fetched struct {
		QueryKind string `json:"query_kind"`
	}
	decodeJSON(t, getResp, &fetched)
	assert.Equal(t, "maintenance_cost", fetched.QueryKind)
}

// The dashboard aggregates live data; AI endpoints degrade gracefully when
// the provider is unreachable.
func TestIntegration_DashboardAndAIFallback(t *testing.T) {
	env := setupTestEnv(t)
	categoryID := env.createCategory(t)
	env.createAsset(t, categoryID, "AST-003")

	dashResp := do(t, env.server, "GET", "/v1/dashboard", nil, env.token)
	require.Equal(t, http.StatusOK, dashResp.StatusCode)
	var dash struct {
		AssetsByStatus map[string]int64 `json:"assets_by_status"`
		TotalBookValue string           `json:"total_book_value"`
	}
	decodeJSON(t, dashResp, &dash)
	assert.Equal(t, int64(1), dash.AssetsByStatus["active"])
	assert.NotEmpty(t, dash.TotalBookValue)

	aiResp := do(t, env.server, "POST", "/v1/ai/analyze-asset",
		jsonBody(t, map[string]string{"asset_name": "Empilhadeira elétrica"}), env.token)
	require.Equal(t, http.StatusOK, aiResp.StatusCode)
	var analysis struct {
		Fallback          bool   `json:"fallback"`
		SuggestedCategory string `json:"suggested_category"`
	}
	decodeJSON(t, aiResp, &analysis)
	assert.True(t, analysis.Fallback)
	assert.NotEmpty(t, analysis.SuggestedCategory)
}

// Exports stream CSV and PDF registers.
func TestIntegration_Exports(t *testing.T) {
	env := setupTestEnv(t)
	categoryID := env.createCategory(t)
	env.createAsset(t, categoryID, "AST-004")

	csvResp := do(t, env.server, "GET", "/v1/exports/assets.csv", nil, env.token)
	require.Equal(t, http.StatusOK, csvResp.StatusCode)
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(csvResp.Body)
	csvResp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "AST-004")

	pdfResp := do(t, env.server, "GET", "/v1/exports/assets.pdf", nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	pdfBuf := new(bytes.Buffer)
	_, err = pdfBuf.ReadFrom(pdfResp.Body)
	pdfResp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBuf.Bytes(), []byte("%PDF")))
}

// Role guards: a plain user cannot reach manager endpoints.
func TestIntegration_RoleGuards(t *testing.T) {
	env := setupTestEnv(t)

	createResp := do(t, env.server, "POST", "/v1/users",
		jsonBody(t, map[string]any{
			"email":    "viewer@e2e.test",
			"name":     "Viewer",
			"password": "viewer1234",
			"role":     "user",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	createResp.Body.Close()

	loginResp := do(t, env.server, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "viewer@e2e.test", "password": "viewer1234"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &login)

	denied := do(t, env.server, "POST", "/v1/categories",
		jsonBody(t, map[string]any{"name": "Nope"}), login.AccessToken)
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)
	denied.Body.Close()

	allowed := do(t, env.server, "GET", fmt.Sprintf("/v1/assets?page=%d&limit=%d", 1, 20), nil, login.AccessToken)
	assert.Equal(t, http.StatusOK, allowed.StatusCode)
	allowed.Body.Close()
}
