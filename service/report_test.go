package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
)

func testPrediction() *model.Prediction {
	return &model.Prediction{
		ID:    "3f2a9c41-7b15-4d0e-9a23-551fbb0c88de",
		Kind:  model.KindLoan,
		Title: "Loan Eligibility Analysis",
		Inputs: []model.InputField{
			{Name: "Applicant Income", Value: "5000"},
			{Name: "Credit History", Value: "1"},
		},
		Result:     "Approved",
		Confidence: 87.3,
		CreatedAt:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestReportID(t *testing.T) {
	id := ReportID(testPrediction())
	if id != "FH-3F2A9C41" {
		t.Errorf("Expected FH-3F2A9C41, got %s", id)
	}
}

func TestReportIDShortID(t *testing.T) {
	pred := &model.Prediction{ID: "abc"}
	if got := ReportID(pred); got != "FH-ABC" {
		t.Errorf("Expected FH-ABC, got %s", got)
	}
}

func TestReportFilename(t *testing.T) {
	name := ReportFilename(testPrediction())
	if name != "FinanceHub_Report_FH-3F2A9C41.pdf" {
		t.Errorf("Expected FinanceHub_Report_FH-3F2A9C41.pdf, got %s", name)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, testPrediction()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if buf.Len() < 1000 {
		t.Errorf("Expected a non-trivial PDF, got %d bytes", buf.Len())
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("Expected PDF magic header")
	}
}

func TestWriteReportWithoutConfidence(t *testing.T) {
	pred := testPrediction()
	pred.Confidence = 0
	pred.Kind = model.KindHouse
	pred.Title = "Real Estate Appraisal"
	pred.Result = "$425,000.50"

	var buf bytes.Buffer
	if err := WriteReport(&buf, pred); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected PDF output")
	}
}
