package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingspend/backend/internal/dashboard"
	"github.com/listingspend/backend/internal/httputil"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// Dashboard is the rollup over all budgets.
type Dashboard struct {
	Summary         dashboard.Summary                         `json:"summary"`
	ByStatus        map[types.BudgetStatus]int                `json:"budgetsByStatus"`
	SpendByCategory map[types.ServiceCategory]decimal.Decimal `json:"spendByCategory"`
	SpendByTier     map[types.PricingTier]decimal.Decimal     `json:"spendByTier"`
	MonthlyTrend    []dashboard.MonthlySpend                  `json:"monthlyTrend"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error" example:"A human readable error message"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns aggregated spend and status rollups over all budgets
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var budgets []models.Budget
	err := models.DB.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	var services []models.Service
	err = models.DB.Find(&services).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	data := Dashboard{
		Summary:         dashboard.Summarize(budgets),
		ByStatus:        dashboard.CountByStatus(budgets),
		SpendByCategory: dashboard.SpendByCategory(budgets, services),
		SpendByTier:     dashboard.SpendByTier(budgets),
		MonthlyTrend:    dashboard.MonthlyTrend(budgets),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
