package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is the presentable outcome of one successful mortgage command.
// Money amounts are rounded to cents; the rate keeps full precision.
type Quote struct {
	ID                string          `json:"id"`
	Command           string          `json:"command"`
	Input             MortgageInput   `json:"input"`
	DownPaymentAmount decimal.Decimal `json:"downPaymentAmount"`
	LoanAmount        decimal.Decimal `json:"loanAmount"`
	MonthlyRate       float64         `json:"monthlyRate"`
	PaymentCount      int             `json:"paymentCount"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	TotalInterest     decimal.Decimal `json:"totalInterest"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// NewQuote rounds result to cents. result must be Finite.
func NewQuote(command string, input MortgageInput, result MortgageResult) Quote {
	return Quote{
		ID:                uuid.NewString(),
		Command:           command,
		Input:             input,
		DownPaymentAmount: cents(result.DownPaymentAmount),
		LoanAmount:        cents(result.LoanAmount),
		MonthlyRate:       result.MonthlyRate,
		PaymentCount:      result.PaymentCount,
		MonthlyPayment:    cents(result.MonthlyPayment),
		TotalPaid:         cents(result.TotalPaid),
		TotalInterest:     cents(result.TotalInterest),
		CreatedAt:         time.Now().UTC(),
	}
}

func cents(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}
