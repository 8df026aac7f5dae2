// api/router.go

package api

import (
	"net/http"

	"solarhub/internal/handlers"
	"solarhub/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Calculator   *handlers.CalculatorHandler
	Quotation    *handlers.QuotationHandler
	Installation *handlers.InstallationHandler
	Report       *handlers.ReportHandler
}

func SetupRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Cors(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, handlers.Response{Code: http.StatusOK, Msg: "ok"})
	})

	api := router.Group("/api")

	// standalone calculator
	calculator := api.Group("/calculator")
	{
		calculator.POST("/load", h.Calculator.Load)
		calculator.POST("/size", h.Calculator.Size)
	}

	// installation wizard
	quotations := api.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/export", h.Quotation.Export)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.GET("/:id/pdf", h.Quotation.PDF)
	}

	// new installation configurator
	installations := api.Group("/installations")
	{
		installations.POST("/price", h.Calculator.Price)
		installations.GET("", h.Installation.List)
		installations.POST("", h.Installation.Create)
		installations.GET("/:id", h.Installation.Get)
		installations.PUT("/:id", h.Installation.Update)
		installations.DELETE("/:id", h.Installation.Delete)
	}

	reports := api.Group("/reports")
	{
		reports.POST("/quotations", h.Report.GetReport)
	}

	return router
}
