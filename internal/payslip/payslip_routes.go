package payslip

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	payslips := r.Group("/payslips")
	{
		payslips.POST("", h.Generate)
		payslips.GET("/:id", h.GetByID)
		payslips.GET("/:id/text", h.GetText)
		payslips.GET("/:id/pdf", h.GetPDF)
	}
}
