package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/ramses2099/storeapiv2/services"
)

// parseID reads a positive numeric path parameter. It writes a 422 response
// and returns false when the value is not one.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("invalid %s: %q", param, c.Param(param))})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into dst. Malformed bodies are 422.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body", "details": msg})
		return false
	}
	return true
}

// parseFilter turns the allowed query parameters into an equality filter on
// the reference columns of the same name.
func parseFilter(c *gin.Context, allowed ...string) (repository.Filter, bool) {
	filter := repository.Filter{}
	for key, values := range c.Request.URL.Query() {
		if !slices.Contains(allowed, key) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("unsupported filter %q", key)})
			return nil, false
		}
		id, err := strconv.ParseUint(values[0], 10, 0)
		if err != nil || id == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("invalid %s: %q", key, values[0])})
			return nil, false
		}
		filter[key] = uint(id)
	}
	return filter, true
}

func respondError(c *gin.Context, svcErr *services.ServiceError) {
	c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
}

func respondList[T any](c *gin.Context, key string, items []T) {
	c.JSON(http.StatusOK, gin.H{key: items, "count": len(items)})
}
