package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/mlmodel"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
	model  mlmodel.Info
}

func NewBaseHandler(logger *zap.Logger, model mlmodel.Info) *BaseHandler {
	return &BaseHandler{logger: logger, model: model}
}

func (b *BaseHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", b.GetRoot)
	r.GET("/health", b.GetHealth)
	r.GET("/model", b.GetModel)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(b.NotFound)
}

// GetRoot godoc
// @Summary      Welcome message
// @Tags         Info
// @Produce      json
// @Success      200  {object}  views.WelcomeResponse
// @Router       / [get]
func (b *BaseHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, views.WelcomeResponse{Message: pkg.WelcomeMessage})
}

// GetHealth godoc
// @Summary      Liveness probe
// @Tags         Info
// @Produce      json
// @Success      200  {object}  views.HealthResponse
// @Router       /health [get]
func (b *BaseHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, views.HealthResponse{
		Status:  "ok",
		Model:   b.model.Name,
		Version: b.model.Version,
	})
}

// GetModel godoc
// @Summary      Loaded model metadata
// @Tags         Info
// @Produce      json
// @Success      200  {object}  mlmodel.Info
// @Router       /model [get]
func (b *BaseHandler) GetModel(c *gin.Context) {
	c.JSON(http.StatusOK, b.model)
}

func (b *BaseHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, pkg.ErrorResponse{
		Code:    pkg.ErrRecordNotFoundCode.Code,
		Message: "route not found",
		TraceID: c.GetString(pkg.TraceId),
	})
}
