package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathBudget   = "/budget"
	PathSettings = "/settings"
)

func addMaintenanceRoutes(rg *gin.RouterGroup, h Handlers) {
	requests := rg.Group(PathRequests)
	{
		requests.GET("", h.Requests.ListRequests)
		requests.POST("", h.Requests.CreateRequest)
		requests.GET("/:id", h.Requests.GetRequest)
		requests.DELETE("/:id", h.Requests.DeleteRequest)

		requests.PATCH("/:id/assign", h.Requests.AssignRequest)
		requests.PATCH("/:id/start", h.Requests.StartWork)
		requests.PATCH("/:id/complete", h.Requests.CompleteWork)

		requests.POST("/:id/estimate", h.Requests.SubmitEstimate)
		requests.PATCH("/:id/estimate/approve", h.Approvals.ApproveEstimate)
		requests.PATCH("/:id/estimate/reject", h.Approvals.RejectEstimate)

		requests.GET("/:id/quotes", h.Requests.ListQuotes)
		requests.POST("/:id/quotes", h.Requests.SubmitQuote)
		requests.GET("/:id/quotes/compare", h.Requests.CompareQuotes)
		requests.PATCH("/:id/quotes/:quote_id/approve", h.Approvals.ApproveQuote)
		requests.PATCH("/:id/quotes/:quote_id/reject", h.Approvals.RejectQuote)
	}

	rg.GET(PathBudget+"/:year/:month", h.Budget.GetMonthlySummary)

	settings := rg.Group(PathSettings)
	{
		settings.GET("/workflow", h.Settings.GetWorkflowSettings)
		settings.PUT("/workflow", h.Settings.UpdateWorkflowSettings)
	}
}
