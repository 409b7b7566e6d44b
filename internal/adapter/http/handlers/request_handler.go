package handlers

import (
	"log"
	"net/http"

	request "nyumbanii_maintenance/internal/adapter/http/dto/request"
	response "nyumbanii_maintenance/internal/adapter/http/dto/response"
	"nyumbanii_maintenance/internal/usecase"
	"nyumbanii_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusFilter = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Unknown request status", http.StatusBadRequest)
	errInvalidCostItems    = pkg.NewDomainErrorSimple("INVALID_COST_ITEMS", "Cost items need a name and non-negative amounts", http.StatusBadRequest)
)

// RequestHandler serves the request lifecycle outside the approval edges.
type RequestHandler struct {
	usecase     usecase.IRequestUseCase
	assignments usecase.IAssignmentUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase, assignments usecase.IAssignmentUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc, assignments: assignments}
}

// CreateRequest godoc
// @Summary      Create a maintenance request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateMaintenanceRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      201  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaintenanceRequest(created))
}

// ListRequests accepts property_id, status and assigned_to query filters.
//
// @Summary      List maintenance requests
// @Tags         requests
// @Produce      json
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {array}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var query request.ListRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	filter, ok := query.ToFilter()
	if !ok {
		abortWithError(c, errInvalidStatusFilter)
		return
	}

	requests, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequests(requests))
}

// GetRequest godoc
// @Summary      Get a maintenance request
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}

// DeleteRequest godoc
// @Summary      Delete a non-terminal request and its quotes
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[request][handler] delete failed request_id=%s err=%v", id, err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitEstimate godoc
// @Summary      Submit a cost estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.SubmitEstimateRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.EstimateOutcomeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/estimate [post]
func (h *RequestHandler) SubmitEstimate(c *gin.Context) {
	var payload request.SubmitEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, errInvalidCostItems)
		return
	}

	id := c.Param("id")
	outcome, err := h.usecase.SubmitEstimate(c.Request.Context(), id, in)
	if err != nil {
		log.Printf("[request][handler] submit-estimate failed request_id=%s err=%v", id, err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateOutcome(outcome))
}

// SubmitQuote godoc
// @Summary      Submit a vendor quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.SubmitQuoteRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      201  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/quotes [post]
func (h *RequestHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(actorFrom(c))
	if err != nil {
		abortWithError(c, errInvalidCostItems)
		return
	}

	id := c.Param("id")
	quote, err := h.usecase.SubmitQuote(c.Request.Context(), id, in)
	if err != nil {
		log.Printf("[request][handler] submit-quote failed request_id=%s err=%v", id, err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {array}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/quotes [get]
func (h *RequestHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// CompareQuotes godoc
// @Summary      Compare pending quotes
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.QuoteComparisonResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/quotes/compare [get]
func (h *RequestHandler) CompareQuotes(c *gin.Context) {
	cmp, err := h.usecase.CompareQuotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteComparison(cmp))
}

// StartWork godoc
// @Summary      Start work
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/start [patch]
func (h *RequestHandler) StartWork(c *gin.Context) {
	r, err := h.usecase.StartWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}

// CompleteWork accepts an empty body; every completion field is optional.
//
// @Summary      Complete work
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.CompleteWorkRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/complete [patch]
func (h *RequestHandler) CompleteWork(c *gin.Context) {
	var payload request.CompleteWorkRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithError(c, errInvalidPayload)
			return
		}
	}

	r, err := h.usecase.CompleteWork(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}

// AssignRequest godoc
// @Summary      Assign a staff member
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.AssignRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/assign [patch]
func (h *RequestHandler) AssignRequest(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	r, err := h.assignments.Assign(c.Request.Context(), id, payload.StaffID)
	if err != nil {
		log.Printf("[request][handler] assign failed request_id=%s staff_id=%s err=%v", id, payload.StaffID, err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}
