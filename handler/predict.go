package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/pkg/logger"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/service"
)

// PredictHandler runs form submissions through the prediction service
// and renders the result page.
type PredictHandler struct {
	predict *service.PredictService
}

func NewPredictHandler(predict *service.PredictService) *PredictHandler {
	return &PredictHandler{predict: predict}
}

// PredictHouse handles POST /predict-house
func (h *PredictHandler) PredictHouse(c *gin.Context) {
	h.run(c, model.KindHouse, "Data processing error")
}

// PredictLoan handles POST /predict-loan
func (h *PredictHandler) PredictLoan(c *gin.Context) {
	h.run(c, model.KindLoan, "Analysis engine error")
}

func (h *PredictHandler) run(c *gin.Context, kind model.PredictionKind, errPrefix string) {
	// Tag both the access log entry and the request context, so service
	// logs carry the model attribute too.
	c.Set("model", string(kind))
	ctx := context.WithValue(c.Request.Context(), logger.ModelKey, string(kind))
	c.Request = c.Request.WithContext(ctx)

	pred, err := h.predict.Predict(ctx, kind, formValues(c))
	if err != nil {
		h.renderError(c, kind, errPrefix, err)
		return
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Title":      pred.Title,
		"Prediction": pred,
		"ReportURL":  "/report/" + pred.ID,
	})
}

func (h *PredictHandler) renderError(c *gin.Context, kind model.PredictionKind, errPrefix string, err error) {
	if errors.Is(err, ml.ErrModelUnavailable) {
		c.HTML(http.StatusServiceUnavailable, "result.html", gin.H{
			"Title": service.Title(kind),
			"Error": service.OfflineMessage(kind),
		})
		return
	}

	var fe *ml.FieldError
	if errors.As(err, &fe) {
		c.HTML(http.StatusBadRequest, "result.html", gin.H{
			"Title": service.Title(kind),
			"Error": errPrefix + ": " + fe.Error(),
		})
		return
	}

	logger.Error(c.Request.Context(), "prediction failed", "error", err)
	c.HTML(http.StatusInternalServerError, "result.html", gin.H{
		"Title": service.Title(kind),
		"Error": errPrefix + ": the analysis could not be completed.",
	})
}

// formValues flattens the POST form into the map the schema vectorizer
// consumes, first value wins per field.
func formValues(c *gin.Context) map[string]string {
	if err := c.Request.ParseForm(); err != nil {
		return nil
	}
	values := make(map[string]string, len(c.Request.PostForm))
	for name := range c.Request.PostForm {
		values[name] = c.Request.PostForm.Get(name)
	}
	return values
}
