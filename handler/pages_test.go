package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
)

func newPagesRouter(t *testing.T) *gin.Engine {
	t.Helper()
	handler := NewPageHandler(newTestRegistry(t))

	router := newTestRouter(t)
	router.GET("/", handler.Landing)
	router.GET("/house", handler.House)
	router.GET("/loan", handler.Loan)
	router.GET("/privacy", handler.Privacy)
	router.GET("/terms", handler.Terms)
	router.GET("/disclaimer", handler.Disclaimer)
	router.GET("/health", handler.Health)
	return router
}

func getPage(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLandingPage(t *testing.T) {
	router := newPagesRouter(t)

	w := getPage(router, "/")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, link := range []string{"/house", "/loan", "/calculator", "/privacy", "/terms", "/disclaimer"} {
		if !strings.Contains(body, link) {
			t.Errorf("Expected link to %s on landing page", link)
		}
	}
}

func TestHouseFormPage(t *testing.T) {
	router := newPagesRouter(t)

	w := getPage(router, "/house")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	fields := []string{"bedrooms", "bathrooms", "flat_area_sqft", "lot_area_sqft", "condition", "grade", "zipcode"}
	for _, field := range fields {
		if !strings.Contains(body, `name="`+field+`"`) {
			t.Errorf("Expected form field %s", field)
		}
	}
	if !strings.Contains(body, `action="/predict-house"`) {
		t.Error("Expected form to post to /predict-house")
	}
}

func TestLoanFormPage(t *testing.T) {
	router := newPagesRouter(t)

	w := getPage(router, "/loan")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	fields := []string{
		"applicant_income", "coapplicant_income", "loan_amount", "loan_term",
		"credit_history", "property_area", "married", "education",
	}
	for _, field := range fields {
		if !strings.Contains(body, `name="`+field+`"`) {
			t.Errorf("Expected form field %s", field)
		}
	}
	for _, area := range []string{"Urban", "Semiurban", "Rural"} {
		if !strings.Contains(body, area) {
			t.Errorf("Expected property area option %s", area)
		}
	}
}

func TestCompliancePages(t *testing.T) {
	router := newPagesRouter(t)

	tests := []struct {
		path  string
		title string
	}{
		{"/privacy", "Privacy Policy"},
		{"/terms", "Terms &amp; Conditions"},
		{"/disclaimer", "Financial Disclaimer"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := getPage(router, tt.path)
			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.title) {
				t.Errorf("Expected title %s", tt.title)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newPagesRouter(t)

	w := getPage(router, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Status string          `json:"status"`
		Models map[string]bool `json:"models"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
	if !response.Models["house"] || !response.Models["loan"] {
		t.Errorf("Expected both models available, got %v", response.Models)
	}
}

func TestPagesServeWithMissingModel(t *testing.T) {
	// Only the house artifact exists; the loan model stays unavailable.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "house.json"), []byte(houseArtifactJSON), 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}
	registry := ml.NewRegistry(dir, map[string]string{
		"house": "house.json",
		"loan":  "loan.json",
	})

	handler := NewPageHandler(registry)
	router := newTestRouter(t)
	router.GET("/", handler.Landing)
	router.GET("/loan", handler.Loan)
	router.GET("/health", handler.Health)

	if w := getPage(router, "/"); w.Code != http.StatusOK {
		t.Errorf("Expected landing to serve, got %d", w.Code)
	}

	w := getPage(router, "/loan")
	if w.Code != http.StatusOK {
		t.Errorf("Expected loan page to serve, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Loan Engine currently offline") {
		t.Error("Expected offline notice on loan page")
	}

	var response struct {
		Models map[string]bool `json:"models"`
	}
	w = getPage(router, "/health")
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !response.Models["house"] || response.Models["loan"] {
		t.Errorf("Expected house available and loan unavailable, got %v", response.Models)
	}
}
