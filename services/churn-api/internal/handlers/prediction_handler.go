package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/pkg/utils"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/services"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/internal/views"
	"go.uber.org/zap"
)

type PredictionHandler struct {
	logger  *zap.Logger
	service services.PredictionService
}

func NewPredictionHandler(logger *zap.Logger, svc services.PredictionService) *PredictionHandler {
	return &PredictionHandler{logger: logger, service: svc}
}

// RegisterRoutes registers prediction routes on the provided Gin engine.
func (h *PredictionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/churn", h.PredictChurn)
}

// PredictChurn godoc
// @Summary      Predict customer churn
// @Description  Scores one customer profile. Inference failures are answered with probability 0 and result 0.
// @Tags         Prediction
// @Accept       json
// @Produce      json
// @Param        customer  body      views.CustomerRequest  true  "Customer attributes"
// @Success      200       {object}  views.PredictionResult
// @Failure      422       {object}  pkg.ErrorResponse
// @Router       /predict/churn [post]
func (h *PredictionHandler) PredictChurn(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}

	var req views.CustomerRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		resp := pkg.ToValidationResponse(traceID, err)
		resp.Fields = pkg.BindingDetails(&req, err)
		h.logger.Info("rejected churn prediction request",
			zap.String(pkg.TraceId, traceID),
			zap.Int("invalidFields", len(resp.Fields)),
			zap.Error(err),
		)
		c.JSON(resp.Status, resp)
		return
	}

	result := h.service.Predict(c.Request.Context(), traceID, req.ToRecord())
	c.JSON(http.StatusOK, result)
}
