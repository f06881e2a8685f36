package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pickbook/utils"
)

// getLogger returns the request-scoped logger if middleware attached one,
// falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
