package handlers

import (
	"net/http"
	"strconv"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes the JSON error body for err. Unclassified errors are
// logged and reported with fallbackKey.
func respondError(c *gin.Context, err error, fallbackKey string, fields ...zap.Field) {
	status, key := apierrors.FromDomainError(err, fallbackKey)
	if status >= http.StatusInternalServerError {
		fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		zap.L().Error(fallbackKey, fields...)
	}
	c.JSON(status, apierrors.CreateError(status, key, middleware.GetLang(c)))
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, apierrors.MsgInvalidTaskID)
		return 0, false
	}
	return id, true
}
