package service

import (
	"math"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
)

// Conservative share of disposable income a bank will commit to a
// monthly installment.
const maxEMIShare = 0.45

// Sanity bounds for calculator input.
const (
	maxAnnualRate = 40.0
	maxTermYears  = 40
)

// AffordabilityInput is a parsed loan affordability enquiry.
type AffordabilityInput struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	AnnualRate      float64
	TermYears       int
}

// AffordabilityResult is the computed borrowing capacity.
type AffordabilityResult struct {
	DisposableIncome float64
	MaxEMI           float64
	SuggestedLoan    float64
	TermMonths       int
}

// roundTo2Decimals rounds a float64 to 2 decimal places
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ComputeAffordability derives the largest sustainable installment from
// disposable income and discounts it to present value over the term.
func ComputeAffordability(in AffordabilityInput) (*AffordabilityResult, error) {
	if in.MonthlyIncome <= 0 {
		return nil, &ml.FieldError{Field: "income", Reason: "must be greater than zero"}
	}
	if in.MonthlyExpenses < 0 {
		return nil, &ml.FieldError{Field: "expenses", Reason: "must be zero or more"}
	}
	if in.MonthlyExpenses >= in.MonthlyIncome {
		return nil, &ml.FieldError{Field: "expenses", Reason: "must be less than monthly income"}
	}
	if in.AnnualRate < 0 {
		return nil, &ml.FieldError{Field: "rate", Reason: "must be zero or more"}
	}
	if in.AnnualRate > maxAnnualRate {
		return nil, &ml.FieldError{Field: "rate", Reason: "must be at most 40"}
	}
	if in.TermYears <= 0 {
		return nil, &ml.FieldError{Field: "tenure", Reason: "must be at least 1 year"}
	}
	if in.TermYears > maxTermYears {
		return nil, &ml.FieldError{Field: "tenure", Reason: "must be at most 40 years"}
	}

	disposable := in.MonthlyIncome - in.MonthlyExpenses
	maxEMI := disposable * maxEMIShare
	months := in.TermYears * 12
	monthlyRate := in.AnnualRate / 100 / 12

	// PV = EMI * [(1 - (1+r)^-n) / r], or EMI*n at zero interest
	var suggested float64
	if monthlyRate > 0 {
		suggested = maxEMI * (1 - math.Pow(1+monthlyRate, -float64(months))) / monthlyRate
	} else {
		suggested = maxEMI * float64(months)
	}

	return &AffordabilityResult{
		DisposableIncome: roundTo2Decimals(disposable),
		MaxEMI:           roundTo2Decimals(maxEMI),
		SuggestedLoan:    roundTo2Decimals(suggested),
		TermMonths:       months,
	}, nil
}
