package router

import (
	"time"

	"motelpos/internal/config"
	"motelpos/internal/handler"
	"motelpos/internal/infra"
	"motelpos/internal/middleware"
	"motelpos/internal/pricing"
	"motelpos/internal/repository"
	"motelpos/internal/service"
	"motelpos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns the configured Gin engine plus the
// async pieces the server entrypoint runs itself (worker handlers, retry cron).
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, summaryCB *infra.CircuitBreaker) (*gin.Engine, *worker.WorkerHandlers, worker.RetryCronConfig) {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	summaryClient := infra.NewSummaryClient(cfg.SummarySidecarURL)
	mailer := infra.NewMailer(cfg)
	engine := pricing.Default()

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	occupancyRepo := repository.NewOccupancyRepository(db)
	productRepo := repository.NewProductRepository(db)
	consumptionRepo := repository.NewConsumptionRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	shiftSvc := service.NewShiftService(shiftRepo, occupancyRepo, consumptionRepo, expenseRepo, dispatcher)
	roomSvc := service.NewRoomService(roomRepo, occupancyRepo)
	occupancySvc := service.NewOccupancyService(occupancyRepo, roomRepo, shiftSvc, engine)
	posSvc := service.NewPOSService(productRepo, consumptionRepo, shiftSvc)
	expenseSvc := service.NewExpenseService(expenseRepo, shiftSvc)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	reportSvc := service.NewReportService(shiftRepo, occupancyRepo, consumptionRepo, expenseRepo, engine)

	// ── Workers ──────────────────────────────────────────────────────────────
	summaryWorker := worker.NewSummaryWorker(summaryClient, shiftRepo, occupancyRepo)
	workerHandlers := &worker.WorkerHandlers{
		Report:  worker.NewReportWorker(reportSvc, shiftRepo, dispatcher, cfg.PDFStoragePath, cfg.MotelName, cfg.ReportEmail),
		Summary: summaryWorker,
		Email:   worker.NewEmailWorker(mailer),
	}
	retryCfg := worker.RetryCronConfig{
		ShiftRepo:     shiftRepo,
		SummaryWorker: summaryWorker,
		CB:            summaryCB,
		RDB:           rdb,
	}

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	roomsH := handler.NewRoomsHandler(roomSvc)
	occupancyH := handler.NewOccupancyHandler(occupancySvc)
	posH := handler.NewPOSHandler(posSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	shiftsH := handler.NewShiftsHandler(shiftSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, summaryCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: receptionist, supervisor, admin — declared per-endpoint
		anyStaff := middleware.RequireRole("receptionist", "supervisor", "admin")
		backOffice := middleware.RequireRole("supervisor", "admin")

		// Room board + management
		v1.GET("/rooms", anyStaff, roomsH.Board)
		v1.PATCH("/rooms/:id/status", anyStaff, roomsH.SetStatus)
		rooms := v1.Group("/rooms", middleware.RequireRole("admin"))
		{
			rooms.POST("", roomsH.Create)
			rooms.PUT("/:id", roomsH.Update)
		}

		// Occupancy lifecycle
		occ := v1.Group("/occupancies", anyStaff)
		{
			occ.POST("/check-in", occupancyH.CheckIn)
			occ.POST("/check-out", occupancyH.CheckOut)
			occ.POST("/quote", occupancyH.Quote)
			occ.GET("/presets", occupancyH.Presets)
			occ.GET("/open", occupancyH.ListOpen)
		}

		// POS: products and consumptions
		v1.GET("/products", anyStaff, posH.ListProducts)
		v1.PATCH("/products/:id/stock", backOffice, posH.AdjustStock)
		products := v1.Group("/products", middleware.RequireRole("admin"))
		{
			products.POST("", posH.CreateProduct)
			products.PUT("/:id", posH.UpdateProduct)
			products.DELETE("/:id", posH.DeactivateProduct)
		}
		v1.POST("/consumptions", anyStaff, posH.RegisterConsumption)
		v1.GET("/consumptions/:session_id", anyStaff, posH.ListConsumptions)

		// Expenses
		v1.POST("/expenses", anyStaff, expensesH.Register)
		v1.GET("/expenses/:session_id", anyStaff, expensesH.ListBySession)

		// Shift sessions
		shifts := v1.Group("/shifts")
		{
			shifts.POST("/open", anyStaff, shiftsH.Open)
			shifts.POST("/close", anyStaff, shiftsH.Close)
			shifts.GET("/active", anyStaff, shiftsH.GetActive)
			shifts.GET("/:id", anyStaff, shiftsH.Get)
		}

		// Vehicles and incidents
		vehicles := v1.Group("/vehicles", anyStaff)
		{
			vehicles.POST("", vehiclesH.Register)
			vehicles.GET("", vehiclesH.List)
			vehicles.POST("/incidents", vehiclesH.ReportIncident)
			vehicles.GET("/incidents", vehiclesH.ListIncidents)
		}

		// Reports — back office only
		reports := v1.Group("/reports", backOffice)
		{
			reports.GET("/shifts", reportsH.History)
			reports.GET("/shifts/:id", reportsH.ShiftReport)
		}

		// User management — admin only
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, workerHandlers, retryCfg
}
