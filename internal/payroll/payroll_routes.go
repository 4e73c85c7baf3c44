package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	periods := r.Group("/pay-periods/:id")
	{
		if redisClient != nil {
			periods.POST("/payrolls/generate", middleware.Idempotency(redisClient), handler.Generate)
		} else {
			periods.POST("/payrolls/generate", handler.Generate)
		}
		periods.GET("/payrolls", handler.ListByPeriod)
		periods.GET("/payrolls/summary", handler.GetSummary)
		periods.GET("/payrolls/register", handler.ExportRegister)
		periods.DELETE("/payrolls", handler.DeleteByPeriod)
		periods.POST("/payslips/request", handler.RequestPayslips)
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("/:id/breakdown", handler.GetBreakdown)
	}
}
