package handlers

import (
	"log"
	"net/http"

	request "nyumbanii_maintenance/internal/adapter/http/dto/request"
	response "nyumbanii_maintenance/internal/adapter/http/dto/response"
	"nyumbanii_maintenance/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler reads and updates the landlord's automation settings.
type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetWorkflowSettings godoc
// @Summary      Get workflow settings
// @Tags         settings
// @Produce      json
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.WorkflowSettingsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /settings/workflow [get]
func (h *SettingsHandler) GetWorkflowSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWorkflowConfig(h.usecase.Get(c.Request.Context())))
}

// UpdateWorkflowSettings godoc
// @Summary      Update workflow settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body  request.WorkflowSettingsRequest  true  "payload"
// @Param        X-User-ID  header  string  false  "caller identity"
// @Success      200  {object}  response.WorkflowSettingsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /settings/workflow [put]
func (h *SettingsHandler) UpdateWorkflowSettings(c *gin.Context) {
	var payload request.WorkflowSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	ctx := c.Request.Context()
	saved, err := h.usecase.Update(ctx, payload.ApplyTo(h.usecase.Get(ctx)))
	if err != nil {
		log.Printf("[settings][handler] update failed err=%v", err)
		abortWithError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflowConfig(saved))
}
