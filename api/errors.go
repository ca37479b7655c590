package api

import (
	"errors"
	"net/http"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the registry error taxonomy onto HTTP responses. A
// declined confirmation is a normal outcome, not an error status.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotConfirmed) {
		c.JSON(http.StatusOK, gin.H{"committed": false, "reason": "not confirmed"})
		return
	}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}
	var rErr *domain.ReferentialError
	if errors.As(err, &rErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
