package notification

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	messages := r.Group("/messages")
	{
		messages.GET("", handler.GetAll)
		messages.GET("/:id", handler.GetById)
		messages.GET("/employee/:employeeId", handler.GetByEmployee)
		messages.GET("/employee/:employeeId/month/:month/:year", handler.GetByEmployeeAndPeriod)
	}
}
