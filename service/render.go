package service

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatPrice renders a dollar amount with thousands separators,
// e.g. "$1,234,567.89".
func FormatPrice(v float64) string {
	return currencyPrinter.Sprintf("$%.2f", v)
}

// Title returns the display heading for a prediction kind.
func Title(kind model.PredictionKind) string {
	if kind == model.KindLoan {
		return "Loan Eligibility Analysis"
	}
	return "Real Estate Appraisal"
}

// OfflineMessage is the user-facing copy shown when a model's artifact
// failed to load at startup.
func OfflineMessage(kind model.PredictionKind) string {
	if kind == model.KindLoan {
		return "System Upgrade in Progress: Loan Engine currently offline."
	}
	return "System Upgrade in Progress: House Model currently offline."
}

// FormatResult renders the raw model output for display. Loan outputs
// are class labels, house outputs are prices.
func FormatResult(kind model.PredictionKind, output float64) string {
	if kind == model.KindLoan {
		if output >= 0.5 {
			return "Approved"
		}
		return "Rejected"
	}
	return FormatPrice(output)
}

// Confidence converts a positive-class probability into the percentage
// shown next to a loan decision, one decimal place. A probability of
// zero means none was recorded and no confidence is reported.
func Confidence(probability float64, approved bool) float64 {
	if probability <= 0 {
		return 0
	}
	p := probability
	if !approved {
		p = 1 - probability
	}
	return math.Round(p*1000) / 10
}

// FieldLabel turns a schema field name into a display label,
// e.g. "flat_area_sqft" becomes "Flat Area Sqft".
func FieldLabel(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ExplainFactors returns the static explainability heuristics shown on
// the result page for each analysis type.
func ExplainFactors(kind model.PredictionKind) []model.ExplainFactor {
	if kind == model.KindLoan {
		return []model.ExplainFactor{
			{Factor: "Credit History", Impact: "Critical", Desc: "Historical repayment behavior is the strongest predictor for this outcome."},
			{Factor: "Income-to-Debt", Impact: "High", Desc: "The ratio between your total income and requested loan amount was analyzed."},
			{Factor: "Education Level", Impact: "Minor", Desc: "Academic background contributes slightly to financial stability scoring."},
		}
	}
	return []model.ExplainFactor{
		{Factor: "Location (Zipcode)", Impact: "High", Desc: "Zipcode is a primary driver of market value in our current model."},
		{Factor: "Space (Sqft)", Impact: "Medium", Desc: "Flat area directly correlates with the predicted appraisal."},
		{Factor: "State (Condition)", Impact: "Moderate", Desc: "Overall property maintenance level affected the final number."},
	}
}
