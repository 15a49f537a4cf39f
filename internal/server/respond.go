package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/auth"
	"github.com/zulandar/trestle/internal/models"
)

var notFoundErrs = []error{
	models.ErrProjectNotFound,
	models.ErrPaymentNotFound,
	models.ErrMatterNotFound,
	models.ErrTaskNotFound,
	models.ErrUserNotFound,
}

var conflictErrs = []error{
	models.ErrEmailTaken,
	models.ErrProjectCodeTaken,
}

// writeError maps a service error onto its HTTP status class. Unexpected
// errors become a generic 500 with no internals exposed.
func writeError(c *gin.Context, err error) {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"error": target.Error()})
			return
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": target.Error()})
			return
		}
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// pathID parses a numeric path parameter, replying 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes a request body, replying 400 on malformed JSON.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
