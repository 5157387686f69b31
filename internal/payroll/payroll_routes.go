package payroll

import (
	"github.com/hrh2/erp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	{
		payroll.POST("/generate/:employeeId/:month/:year",
			middleware.Idempotency(rdb),
			middleware.RateLimitByIP(1, 5),
			handler.Generate,
		)
		payroll.POST("/generate/month/:month/:year",
			middleware.RateLimitByIP(0.5, 2),
			handler.GenerateForMonth,
		)

		payroll.PUT("/approve/:payslipId", handler.Approve)
		payroll.PUT("/approve/month/:month/:year", handler.ApproveForMonth)

		payroll.GET("/:id", handler.GetById)
		payroll.GET("/:id/payslip/download", handler.DownloadPayslip)
		payroll.GET("/employee/:employeeId", handler.GetByEmployee)
		payroll.GET("/employee/:employeeId/status/:status", handler.GetByEmployeeAndStatus)
		payroll.GET("/employee/:employeeId/month/:month/:year", handler.GetByEmployeeAndPeriod)
		payroll.GET("/status/:status", handler.GetByStatus)
		payroll.GET("/month/:month/:year", handler.GetByPeriod)
		payroll.GET("/month/:month/:year/status/:status", handler.GetByPeriodAndStatus)
	}
}
