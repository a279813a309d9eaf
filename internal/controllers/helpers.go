package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"delivery_admin/internal/services"
)

// respond shapes every API payload as {code, message, data}; code
// mirrors the HTTP status.
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
		"data":    data,
	})
}

// respondError translates a service error to its fixed HTTP status.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respond(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		respond(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUserInactive):
		respond(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, services.ErrExternalService):
		respond(c, http.StatusBadGateway, err.Error(), nil)
	default:
		logrus.WithError(err).Error("unhandled service error")
		respond(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respond(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

func pageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// pagedData is the uniform list envelope inside "data".
func pagedData(list interface{}, total int64, page, limit int) gin.H {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return gin.H{
		"list":  list,
		"total": total,
		"page":  page,
		"limit": limit,
	}
}
