package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/pkg/logger"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/service"
)

// ReportHandler serves PDF downloads for stored predictions.
type ReportHandler struct {
	store *service.PredictionStore
}

func NewReportHandler(store *service.PredictionStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// Download handles GET /report/:id
func (h *ReportHandler) Download(c *gin.Context) {
	id := c.Param("id")

	pred := h.store.Get(id)
	if pred == nil {
		c.HTML(http.StatusNotFound, "result.html", gin.H{
			"Title": "Report Not Found",
			"Error": "This report is no longer available. Run the analysis again to generate a new one.",
		})
		return
	}

	var buf bytes.Buffer
	if err := service.WriteReport(&buf, pred); err != nil {
		logger.Error(c.Request.Context(), "report generation failed", "prediction_id", id, "error", err)
		c.HTML(http.StatusInternalServerError, "result.html", gin.H{
			"Title": "Report Error",
			"Error": "The report could not be generated. Please try again.",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ReportFilename(pred)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
