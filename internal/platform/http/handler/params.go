package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID parses the positive integer path parameter name.
// On failure it writes 400 and returns false.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
