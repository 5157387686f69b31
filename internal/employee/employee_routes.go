package employee

import (
	"github.com/hrh2/erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", middleware.RateLimitByIP(1, 5), handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
