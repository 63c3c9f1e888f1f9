// Package response shapes the JSON envelopes: {data} for resources,
// {message} for mutation acks, {error} for failures. Paginated results are
// written as-is (they already carry data/total/page/limit/totalPages).
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/apperr"
)

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Page writes a pagination envelope at the top level.
func Page(c *gin.Context, result any) {
	c.JSON(http.StatusOK, result)
}

// Fail maps an error to its response. apperr carries its own status;
// anything else becomes a fixed 500 with the cause logged server-side only
// (via the gin error list picked up by the access logger).
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Err != nil {
			_ = c.Error(ae.Err)
		}
		Err(c, ae.Code, ae.Error())
		return
	}
	_ = c.Error(err)
	Err(c, http.StatusInternalServerError, "internal server error")
}
