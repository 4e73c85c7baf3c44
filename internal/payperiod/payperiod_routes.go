package payperiod

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	periods := r.Group("/pay-periods")
	{
		periods.GET("", h.GetAll)
		periods.GET("/:id", h.GetByID)
	}
}
