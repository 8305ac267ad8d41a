package response

import (
	"errors"
	"net/http"

	"venuegate/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

// FromError maps the shared error taxonomy onto HTTP statuses. fallbackCode
// names the operation for errors outside the taxonomy.
func FromError(c *gin.Context, fallbackCode string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		Fail(c, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, apperrors.ErrUnsupported):
		Fail(c, http.StatusBadRequest, "unsupported_operation", err.Error())
	case apperrors.IsAuth(err):
		Fail(c, http.StatusBadGateway, "upstream_auth_failed", err.Error())
	case apperrors.IsUpstream(err):
		Fail(c, http.StatusBadGateway, fallbackCode, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, fallbackCode, err.Error())
	}
}
