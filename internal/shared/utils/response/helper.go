package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a success envelope with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{OK: true, Data: data})
}

// Fail writes an error envelope with a machine-readable error code.
func Fail(c *gin.Context, code int, errCode string, details interface{}) {
	c.JSON(code, Envelope{OK: false, Error: errCode, Details: details})
}
