package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"go.uber.org/zap"
)

// Recovery turns handler panics into the standard 500 error envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic recovered: %v", recovered)
		resp := pkg.ToErrorResponse(logger, c.GetString(pkg.TraceId), err)
		c.AbortWithStatusJSON(resp.Status, resp)
	})
}
