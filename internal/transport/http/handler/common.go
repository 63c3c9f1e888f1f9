// Package handler holds the gin controllers: parse and presence-validate the
// request, call one usecase, shape the envelope. Deeper validation and
// ownership checks live in the usecases.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/domain"
	mdw "listkeeper/internal/transport/http/middleware"
)

// caller returns the authenticated user's uuid set by the auth middleware.
func caller(c *gin.Context) string { return c.GetString(mdw.KeyUserID) }

func pageFromQuery(c *gin.Context) domain.Page {
	return domain.Page{
		Page:  atoiDefault(c.Query("page"), 1),
		Limit: atoiDefault(c.Query("limit"), 10),
	}
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
