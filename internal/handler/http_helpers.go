package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/postline/internal/service"
	"go.uber.org/zap"
)

// postIDParam names the first wildcard under /posts/. gin allows one wildcard
// name per segment, so the share route reads the post id from :year.
const postIDParam = "year"

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parseIntParam(c *gin.Context, key string) (int, error) {
	value, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return value, nil
}

// absoluteURL joins path onto the scheme and host the request arrived on.
func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, path)
}

func (a *API) notFound(c *gin.Context, message string) {
	a.renderHTML(c, http.StatusNotFound, "404.html", gin.H{
		"title":   "Not found",
		"message": message,
	})
	c.Abort()
}

func (a *API) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	a.log.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	a.renderHTML(c, http.StatusInternalServerError, "500.html", gin.H{
		"title": "Server error",
	})
	c.Abort()
}

// handleLookupError renders not-found sentinels as 404 and anything else as 500.
func (a *API) handleLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		a.notFound(c, "No post matches the given query.")
	case errors.Is(err, service.ErrTagNotFound):
		a.notFound(c, "No tag matches the given query.")
	case errors.Is(err, service.ErrPageNotAnInteger):
		a.notFound(c, "Page is not a number.")
	case errors.Is(err, service.ErrEmptyPage):
		a.notFound(c, "That page contains no results.")
	default:
		a.serverError(c, err)
	}
}
