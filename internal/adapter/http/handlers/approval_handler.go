package handlers

import (
	"log"
	"net/http"

	request "nyumbanii_maintenance/internal/adapter/http/dto/request"
	response "nyumbanii_maintenance/internal/adapter/http/dto/response"
	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler exposes the landlord's approve/reject decisions on estimates and quotes.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// ApproveEstimate godoc
// @Summary      Approve the estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.DecisionRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/estimate/approve [patch]
func (h *ApprovalHandler) ApproveEstimate(c *gin.Context) {
	payload, ok := bindDecision(c)
	if !ok {
		return
	}
	r, err := h.usecase.ApproveEstimate(c.Request.Context(), c.Param("id"), actorFrom(c), payload.Notes)
	h.writeRequest(c, r, err)
}

// RejectEstimate godoc
// @Summary      Reject the estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        payload  body  request.DecisionRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/estimate/reject [patch]
func (h *ApprovalHandler) RejectEstimate(c *gin.Context) {
	payload, ok := bindDecision(c)
	if !ok {
		return
	}
	r, err := h.usecase.RejectEstimate(c.Request.Context(), c.Param("id"), actorFrom(c), payload.Notes)
	h.writeRequest(c, r, err)
}

// ApproveQuote answers 202 when the approval committed but some sibling quotes are
// still being reconciled.
//
// @Summary      Approve a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        quote_id  path  string  true  "quote_id"
// @Param        payload  body  request.DecisionRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.MaintenanceRequestResponse
// @Success      202  {object}  response.PartialApprovalResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/quotes/{quote_id}/approve [patch]
func (h *ApprovalHandler) ApproveQuote(c *gin.Context) {
	payload, ok := bindDecision(c)
	if !ok {
		return
	}
	requestID, quoteID := c.Param("id"), c.Param("quote_id")
	log.Printf("[approval][handler] approve-quote start request_id=%s quote_id=%s", requestID, quoteID)

	r, err := h.usecase.ApproveQuote(c.Request.Context(), requestID, quoteID, actorFrom(c), payload.Notes)
	if ids, partial := failedQuoteIDs(err); partial {
		log.Printf("[approval][handler] approve-quote partial request_id=%s pending=%v", requestID, ids)
		c.JSON(http.StatusAccepted, response.FromPartialApproval(r, ids))
		return
	}
	h.writeRequest(c, r, err)
}

// RejectQuote godoc
// @Summary      Reject a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "id"
// @Param        quote_id  path  string  true  "quote_id"
// @Param        payload  body  request.RejectQuoteRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /requests/{id}/quotes/{quote_id}/reject [patch]
func (h *ApprovalHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithError(c, errInvalidPayload)
			return
		}
	}

	q, err := h.usecase.RejectQuote(c.Request.Context(), c.Param("id"), c.Param("quote_id"), actorFrom(c), payload.Reason)
	if err != nil {
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *ApprovalHandler) writeRequest(c *gin.Context, r entities.MaintenanceRequest, err error) {
	if err != nil {
		log.Printf("[approval][handler] decision failed request_id=%s err=%v", c.Param("id"), err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaintenanceRequest(r))
}

func bindDecision(c *gin.Context) (request.DecisionRequest, bool) {
	var payload request.DecisionRequest
	if c.Request.ContentLength == 0 {
		return payload, true
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return payload, false
	}
	return payload, true
}
