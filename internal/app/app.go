package app

import (
	"os"

	"github.com/hrh2/erp/internal/deduction"
	"github.com/hrh2/erp/internal/employee"
	"github.com/hrh2/erp/internal/employment"
	"github.com/hrh2/erp/internal/middleware"
	"github.com/hrh2/erp/internal/notification"
	"github.com/hrh2/erp/internal/payroll"
	"github.com/hrh2/erp/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module on the
// router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&employment.Employment{},
		&deduction.Deduction{},
		&payroll.Payslip{},
		&notification.Message{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, gormDB, redisClient)
}
