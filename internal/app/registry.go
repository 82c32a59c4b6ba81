package app

import (
	"net/http"

	"go-leave/internal/company"
	"go-leave/internal/config"
	"go-leave/internal/leave"
	"go-leave/internal/leavebalance"
	"go-leave/internal/membership"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/response"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	membershipRepo := membership.NewRepository(gormDB)
	balanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}
	access := membership.NewAccess(membershipRepo, rbacService, logger)

	// --- Services ---
	userService := user.NewService(userRepo, logger)
	companyService := company.NewService(gormDB, companyRepo, membershipRepo, access, outboxRepo, logger)
	membershipService := membership.NewService(gormDB, membershipRepo, access, outboxRepo, logger)
	balanceService := leavebalance.NewService(gormDB, balanceRepo, access, outboxRepo, rdb, logger)
	leaveService := leave.NewService(gormDB, leaveRepo, access, balanceService, outboxRepo, rdb, logger)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	membershipHandler := membership.NewHandler(membershipService, logger)
	balanceHandler := leavebalance.NewHandler(balanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Global Middleware ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Locale(),
		middleware.AccessLog(logger.Named("http")),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	auth := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.SyncUser(userService, rdb),
	}
	idempotency := middleware.Idempotency(rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler, auth...)
		company.RegisterRoutes(api, companyHandler, auth...)
		membership.RegisterRoutes(api, membershipHandler, auth...)
		leavebalance.RegisterRoutes(api, balanceHandler, idempotency, auth...)
		leave.RegisterRoutes(api, leaveHandler, idempotency, auth...)
		rbac.RegisterRoutes(api, rbacHandler, auth...)
	}

	return nil
}
