package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listSpyService records the filter the handler forwards, so tests can tell
// whether an invalid query string was stopped at the binding layer.
type listSpyService struct {
	called bool
	filter dto.AssetFilter
}

func (s *listSpyService) List(_ context.Context, _ uuid.UUID, filter dto.AssetFilter) (*dto.AssetListResponse, error) {
	s.called = true
	s.filter = filter
	return &dto.AssetListResponse{Data: []dto.AssetResponse{}, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *listSpyService) Create(context.Context, uuid.UUID, uuid.UUID, dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	return nil, nil
}
func (s *listSpyService) GetByID(context.Context, uuid.UUID, uuid.UUID) (*dto.AssetResponse, error) {
	return nil, nil
}
func (s *listSpyService) ResolveByCode(context.Context, uuid.UUID, string) (*dto.AssetResponse, error) {
	return nil, nil
}
func (s *listSpyService) Update(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	return nil, nil
}
func (s *listSpyService) Dispose(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, dto.DisposeAssetRequest) (*dto.DisposalResponse, error) {
	return nil, nil
}
func (s *listSpyService) GetDisposal(context.Context, uuid.UUID, uuid.UUID) (*dto.DisposalResponse, error) {
	return nil, nil
}
func (s *listSpyService) ListAudit(context.Context, uuid.UUID, uuid.UUID) ([]dto.AuditLogResponse, error) {
	return nil, nil
}

func newListTestRouter(svc *listSpyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{
			UserID:    uuid.NewString(),
			CompanyID: uuid.NewString(),
			Role:      "admin",
		})
		c.Next()
	})
	h := NewAssetsHandler(svc)
	r.GET("/assets", h.List)
	return r
}

func getAssets(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/assets"+query, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssetList_ZeroPageAndLimitRejected(t *testing.T) {
	svc := &listSpyService{}
	r := newListTestRouter(svc)

	w := getAssets(t, r, "?page=0&limit=0")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, svc.called, "service must not see an unvalidated filter")
}

func TestAssetList_LimitAboveCapRejected(t *testing.T) {
	svc := &listSpyService{}
	r := newListTestRouter(svc)

	w := getAssets(t, r, "?limit=500")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, svc.called)
}

func TestAssetList_DefaultsApplied(t *testing.T) {
	svc := &listSpyService{}
	r := newListTestRouter(svc)

	w := getAssets(t, r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.called)
	assert.Equal(t, 1, svc.filter.Page)
	assert.Equal(t, 20, svc.filter.Limit)
}

func TestAssetList_ExplicitPaginationForwarded(t *testing.T) {
	svc := &listSpyService{}
	r := newListTestRouter(svc)

	w := getAssets(t, r, "?page=3&limit=50&status=active")

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.called)
	assert.Equal(t, 3, svc.filter.Page)
	assert.Equal(t, 50, svc.filter.Limit)
	assert.Equal(t, "active", svc.filter.Status)
}

func TestMaintenanceFilter_ValidatorTags(t *testing.T) {
	cases := []struct {
		name   string
		filter dto.MaintenanceFilter
		ok     bool
	}{
		{"defaults", dto.MaintenanceFilter{Page: 1, Limit: 20}, true},
		{"zero page", dto.MaintenanceFilter{Page: 0, Limit: 20}, false},
		{"zero limit", dto.MaintenanceFilter{Page: 1, Limit: 0}, false},
		{"limit over cap", dto.MaintenanceFilter{Page: 1, Limit: 101}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.filter)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
