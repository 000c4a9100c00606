package router

import (
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/config"
	"github.com/wyllersu/lifecyle-asset-insight/internal/handler"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	llm *infra.LLMClient,
	llmCB *infra.CircuitBreaker,
	store *infra.DocumentStore,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	profileRepo := repository.NewProfileRepository(db)
	orgRepo := repository.NewOrgRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	partRepo := repository.NewSparePartRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(profileRepo, cfg)
	orgSvc := service.NewOrgService(orgRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	assetSvc := service.NewAssetService(assetRepo, categoryRepo, orgRepo)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, assetRepo, partRepo)
	partSvc := service.NewSparePartService(partRepo, assetRepo)
	documentSvc := service.NewDocumentService(documentRepo, assetRepo, store)
	reportSvc := service.NewReportService(reportRepo, assetRepo, partRepo, llm, llmCB, rdb)
	aiSvc := service.NewAIService(llm, llmCB)
	notificationSvc := service.NewNotificationService(notificationRepo)
	exportSvc := service.NewExportService(assetRepo, orgRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	orgH := handler.NewOrgHandler(orgSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	assetsH := handler.NewAssetsHandler(assetSvc)
	maintenancesH := handler.NewMaintenancesHandler(maintenanceSvc)
	partsH := handler.NewPartsHandler(partSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	reportsH := handler.NewReportsHandler(reportSvc, aiSvc)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)
	exportsH := handler.NewExportsHandler(exportSvc)
	clientConfigH := handler.NewClientConfigHandler(cfg)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, llmCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleUser)
	managerUp := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Company / org structure
		v1.GET("/company", anyRole, orgH.GetCompany)
		v1.PUT("/company", adminOnly, orgH.UpdateCompany)

		v1.GET("/departments", anyRole, orgH.ListDepartments)
		departments := v1.Group("/departments", adminOnly)
		{
			departments.POST("", orgH.CreateDepartment)
			departments.PUT("/:id", orgH.UpdateDepartment)
		}

		v1.GET("/units", anyRole, orgH.ListUnits)
		units := v1.Group("/units", adminOnly)
		{
			units.POST("", orgH.CreateUnit)
			units.PUT("/:id", orgH.UpdateUnit)
		}

		// Users — admin only
		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}

		// Categories — managers can write, everyone can read
		v1.GET("/categories", anyRole, categoriesH.List)
		categories := v1.Group("/categories", managerUp)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}

		// Assets
		v1.GET("/assets", anyRole, assetsH.List)
		v1.GET("/assets/scan/:code", anyRole, assetsH.Scan)
		v1.GET("/assets/:id", anyRole, assetsH.GetByID)
		v1.GET("/assets/:id/qr", anyRole, assetsH.QRCode)
		v1.GET("/assets/:id/audit", managerUp, assetsH.Audit)
		v1.GET("/assets/:id/disposal", anyRole, assetsH.GetDisposal)
		v1.POST("/assets", managerUp, assetsH.Create)
		v1.PUT("/assets/:id", managerUp, assetsH.Update)
		v1.POST("/assets/:id/dispose", managerUp, assetsH.Dispose)

		// Asset documents
		v1.GET("/assets/:id/documents", anyRole, documentsH.ListByAsset)
		v1.POST("/assets/:id/documents", managerUp, documentsH.Upload)
		v1.GET("/documents/:id", anyRole, documentsH.Download)
		v1.DELETE("/documents/:id", managerUp, documentsH.Delete)

		// Maintenances
		v1.GET("/maintenances", anyRole, maintenancesH.List)
		v1.GET("/maintenances/:id", anyRole, maintenancesH.GetByID)
		v1.GET("/maintenances/:id/parts", anyRole, maintenancesH.ListParts)
		maints := v1.Group("/maintenances", managerUp)
		{
			maints.POST("", maintenancesH.Create)
			maints.PUT("/:id", maintenancesH.Update)
			maints.PATCH("/:id/status", maintenancesH.UpdateStatus)
			maints.POST("/:id/parts", maintenancesH.ConsumePart)
		}

		// Spare parts
		v1.GET("/parts", anyRole, partsH.List)
		v1.GET("/parts/:id", anyRole, partsH.GetByID)
		v1.GET("/assets/:id/parts", anyRole, partsH.ListByAsset)
		parts := v1.Group("/parts", managerUp)
		{
			parts.POST("", partsH.Create)
			parts.PUT("/:id", partsH.Update)
			parts.DELETE("/:id", partsH.Deactivate)
			parts.PATCH("/:id/stock", partsH.AdjustStock)
			parts.POST("/links", partsH.LinkAsset)
		}

		// Reports + AI
		v1.POST("/reports", managerUp, reportsH.Generate)
		v1.GET("/reports", managerUp, reportsH.List)
		v1.GET("/reports/:id", managerUp, reportsH.GetByID)
		v1.DELETE("/reports/:id", managerUp, reportsH.Delete)
		v1.POST("/ai/analyze-asset", managerUp, reportsH.AnalyzeAsset)
		v1.POST("/ai/suggest-category", managerUp, reportsH.SuggestCategory)

		// Dashboard
		v1.GET("/dashboard", anyRole, reportsH.Dashboard)

		// Exports
		v1.GET("/exports/assets.csv", managerUp, exportsH.AssetsCSV)
		v1.GET("/exports/assets.pdf", managerUp, exportsH.AssetsPDF)

		// Notifications
		v1.GET("/notifications", anyRole, notificationsH.List)
		v1.PATCH("/notifications/:id/read", anyRole, notificationsH.MarkRead)

		// Client bootstrap settings
		v1.GET("/config", anyRole, clientConfigH.Get)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
