package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
)

// PageHandler serves the static site pages and the model entry forms.
type PageHandler struct {
	registry *ml.Registry
}

func NewPageHandler(registry *ml.Registry) *PageHandler {
	return &PageHandler{registry: registry}
}

// Landing renders the home page with links to both analysis tools.
func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Title":          "Finance Hub",
		"HouseAvailable": h.registry.Available(string(model.KindHouse)),
		"LoanAvailable":  h.registry.Available(string(model.KindLoan)),
	})
}

// House renders the property appraisal form.
func (h *PageHandler) House(c *gin.Context) {
	c.HTML(http.StatusOK, "house.html", gin.H{
		"Title":     "Real Estate Appraisal",
		"Available": h.registry.Available(string(model.KindHouse)),
	})
}

// Loan renders the loan eligibility form.
func (h *PageHandler) Loan(c *gin.Context) {
	c.HTML(http.StatusOK, "loan.html", gin.H{
		"Title":     "Loan Eligibility Analysis",
		"Available": h.registry.Available(string(model.KindLoan)),
	})
}

// Privacy, Terms and Disclaimer share one compliance template with
// different headings.
func (h *PageHandler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "compliance.html", gin.H{"Title": "Privacy Policy"})
}

func (h *PageHandler) Terms(c *gin.Context) {
	c.HTML(http.StatusOK, "compliance.html", gin.H{"Title": "Terms & Conditions"})
}

func (h *PageHandler) Disclaimer(c *gin.Context) {
	c.HTML(http.StatusOK, "compliance.html", gin.H{"Title": "Financial Disclaimer"})
}

// Health reports process liveness and per-model availability.
func (h *PageHandler) Health(c *gin.Context) {
	models := make(map[string]bool)
	for _, name := range h.registry.Names() {
		models[name] = h.registry.Available(name)
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"models": models,
	})
}
