package app

import (
	"context"
	"os"

	"paytrack/internal/employee"
	"paytrack/internal/messaging/kafka"
	"paytrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	ctx := context.Background()

	// --- Repositories ---
	var employeeRepo employee.Repository
	if os.Getenv("OUTBOX_ENABLED") == "true" {
		outboxRepo := kafka.NewOutboxRepository(gormDB)
		if err := outboxRepo.InitSchema(ctx); err != nil {
			return err
		}
		employeeRepo = employee.NewRepositoryWithOutbox(gormDB, outboxRepo)
	} else {
		zap.L().Info("OUTBOX_ENABLED not set, domain events disabled")
		employeeRepo = employee.NewRepository(gormDB)
	}

	if err := employeeRepo.InitSchema(ctx); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)

	// --- Handlers & Routes ---
	employeeHandler := employee.NewHandler(employeeService)

	opts := employee.RouteOptions{}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		opts.Auth = middleware.AuthMiddleware(secret)
	}
	if rdb != nil {
		opts.Idempotency = middleware.Idempotency(rdb)
	}

	employee.RegisterRoutes(&router.RouterGroup, employeeHandler, opts)
	return nil
}
