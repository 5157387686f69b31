package employment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employments := r.Group("/employments")
	{
		employments.GET("", handler.GetAll)
		employments.GET("/:id", handler.GetById)
		employments.GET("/employee/:employeeId", handler.GetByEmployee)
		employments.POST("", handler.Create)
		employments.PUT("/:id", handler.Update)
		employments.DELETE("/:id", handler.Delete)
	}
}
