package handlers

import (
	"net/http"
	"strconv"

	response "nyumbanii_maintenance/internal/adapter/http/dto/response"
	"nyumbanii_maintenance/internal/usecase"
	"nyumbanii_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPeriod = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Year and month must be numeric", http.StatusBadRequest)

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// GetMonthlySummary godoc
// @Summary      Monthly spend against budget
// @Tags         budget
// @Produce      json
// @Param        year  path  string  true  "year"
// @Param        month  path  string  true  "month"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.BudgetPeriodResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /budget/{year}/{month} [get]
func (h *BudgetHandler) GetMonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithError(c, errInvalidPeriod)
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		abortWithError(c, errInvalidPeriod)
		return
	}

	p, err := h.usecase.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetPeriod(p))
}
