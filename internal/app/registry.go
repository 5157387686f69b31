package app

import (
	"context"
	"database/sql"

	"github.com/hrh2/erp/internal/deduction"
	"github.com/hrh2/erp/internal/employee"
	"github.com/hrh2/erp/internal/employment"
	"github.com/hrh2/erp/internal/messaging/kafka"
	"github.com/hrh2/erp/internal/notification"
	"github.com/hrh2/erp/internal/payroll"
	"github.com/hrh2/erp/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employmentRepo := employment.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, counterRepo)
	employmentService := employment.NewService(db, employmentRepo)
	deductionService := deduction.NewService(db, deductionRepo)
	notificationService := notification.NewService(db, notificationRepo, outboxRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		employmentService,
		deductionService,
		employeeRepo,
		notificationService,
	)

	// default rules for a fresh database
	if err := deductionService.Seed(context.Background()); err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	employmentHandler := employment.NewHandler(employmentService)
	deductionHandler := deduction.NewHandler(deductionService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		employment.RegisterRoutes(api, employmentHandler)
		deduction.RegisterRoutes(api, deductionHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		notification.RegisterRoutes(api, notificationHandler)
	}

	return nil
}
