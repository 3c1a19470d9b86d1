package app

import (
	"database/sql"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/auth/token"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/dailyreport"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/leave"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/messaging/kafka"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/middleware"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac/infra"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/counter"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/shared/metrics"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/timetracking"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	timetrackingRepo := timetracking.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	reportRepo := dailyreport.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	// --- Services ---
	authService := auth.NewService(userRepo, tokens, logger)
	userService := user.NewService(userRepo, logger)
	timetrackingService := timetracking.NewService(db, timetrackingRepo,
		timetracking.WithLogger(logger),
		timetracking.WithOutbox(outboxRepo),
		timetracking.WithPolicy(timetracking.OvertimePolicy{
			RegularHours:    cfg.Attendance.RegularHours,
			FixedBreakHours: cfg.Attendance.FixedBreakHours,
		}),
		timetracking.WithLocation(cfg.Location()),
		timetracking.WithCache(timetracking.NewTeamCache(rdb)),
	)
	leaveService := leave.NewService(db, leaveRepo, counterRepo, logger)
	reportService := dailyreport.NewService(reportRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	userHandler := user.NewHandler(userService, logger)
	timetrackingHandler := timetracking.NewHandler(timetrackingService, logger)
	leaveHandler := leave.NewHandler(leaveService, rdb, logger)
	reportHandler := dailyreport.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(
		middleware.RequestID(),
		metrics.Middleware(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	router.GET("/healthz", healthHandler(db, rdb))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.AuthMiddleware(tokens)

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	auth.RegisterRoutes(api, authHandler, authMiddleware)

	protected := api.Group("")
	protected.Use(authMiddleware, middleware.ContextLogger(logger))
	{
		user.RegisterRoutes(protected, userHandler, rbacService)
		timetracking.RegisterRoutes(protected, timetrackingHandler, rbacService)
		leave.RegisterRoutes(protected, leaveHandler, rbacService, rdb)
		dailyreport.RegisterRoutes(protected, reportHandler, rbacService)
		rbac.RegisterRoutes(protected, rbacHandler)
	}

	return nil
}
