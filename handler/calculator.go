package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/service"
)

// CalculatorHandler serves the loan affordability calculator.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Show handles GET /calculator
func (h *CalculatorHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "calculator.html", gin.H{
		"Title": "Affordability Calculator",
	})
}

// Compute handles POST /calculator
func (h *CalculatorHandler) Compute(c *gin.Context) {
	input, err := parseCalculatorForm(c)
	if err == nil {
		var result *service.AffordabilityResult
		result, err = service.ComputeAffordability(input)
		if err == nil {
			c.HTML(http.StatusOK, "calculator.html", gin.H{
				"Title": "Affordability Calculator",
				"Result": gin.H{
					"MaxEMI":        service.FormatPrice(result.MaxEMI),
					"SuggestedLoan": service.FormatPrice(result.SuggestedLoan),
					"TermMonths":    result.TermMonths,
				},
			})
			return
		}
	}

	var fe *ml.FieldError
	if !errors.As(err, &fe) {
		fe = &ml.FieldError{Field: "form", Reason: "could not be processed"}
	}
	c.HTML(http.StatusBadRequest, "calculator.html", gin.H{
		"Title": "Affordability Calculator",
		"Error": fe.Error(),
	})
}

func parseCalculatorForm(c *gin.Context) (service.AffordabilityInput, error) {
	var in service.AffordabilityInput

	income, err := parseFloatField(c, "income")
	if err != nil {
		return in, err
	}
	expenses, err := parseFloatField(c, "expenses")
	if err != nil {
		return in, err
	}
	rate, err := parseFloatField(c, "rate")
	if err != nil {
		return in, err
	}

	tenureRaw := strings.TrimSpace(c.PostForm("tenure"))
	if tenureRaw == "" {
		return in, &ml.FieldError{Field: "tenure", Reason: "is required"}
	}
	tenure, err := strconv.Atoi(tenureRaw)
	if err != nil {
		return in, &ml.FieldError{Field: "tenure", Reason: "must be a whole number of years"}
	}

	in.MonthlyIncome = income
	in.MonthlyExpenses = expenses
	in.AnnualRate = rate
	in.TermYears = tenure
	return in, nil
}

func parseFloatField(c *gin.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return 0, &ml.FieldError{Field: name, Reason: "is required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ml.FieldError{Field: name, Reason: "must be a number"}
	}
	return v, nil
}
