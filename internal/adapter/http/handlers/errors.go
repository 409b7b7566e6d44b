package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"nyumbanii_maintenance/internal/usecase"
	"nyumbanii_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller identity; authentication happens upstream.
const HeaderUserID = "X-User-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func actorFrom(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderUserID)); v != "" {
		return v
	}
	return usecase.DefaultActor
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapMaintenanceError(err error) *pkg.AppError {
	var (
		vErr *usecase.ValidationError
		nErr *usecase.NotFoundError
		tErr *usecase.TransitionError
	)
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", vErr.Error(), http.StatusBadRequest).
			WithDetail("field", vErr.Field)
	case errors.As(err, &nErr):
		return pkg.NewDomainErrorSimple(strings.ToUpper(nErr.Kind)+"_NOT_FOUND", nErr.Error(), http.StatusNotFound)
	case errors.As(err, &tErr):
		allowed := make([]string, 0, len(tErr.Allowed))
		for _, s := range tErr.Allowed {
			allowed = append(allowed, string(s))
		}
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", tErr.Error(), http.StatusConflict).
			WithDetail("current_status", string(tErr.Current)).
			WithDetail("allowed_from", allowed)
	case errors.Is(err, usecase.ErrStore):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Store temporarily unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// failedQuoteIDs lists the quotes a partial approval left for the reconciler.
func failedQuoteIDs(err error) ([]string, bool) {
	var pErr *usecase.PartialFailureError
	if !errors.As(err, &pErr) {
		return nil, false
	}
	ids := make([]string, 0, len(pErr.Failed))
	for id := range pErr.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, true
}
