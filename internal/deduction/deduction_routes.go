package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	deductions := r.Group("/deductions")
	{
		deductions.GET("", handler.GetAll)
		deductions.GET("/:id", handler.GetById)
		deductions.GET("/code/:code", handler.GetByCode)
		deductions.GET("/name/:name", handler.GetByName)
		deductions.POST("", handler.Create)
		deductions.PUT("/:id", handler.Update)
		deductions.DELETE("/:id", handler.Delete)
	}
}
