package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// MaxTermYears is the longest term accepted. It keeps the payment count
// (term * 12) well inside int range on every platform that parses it.
const MaxTermYears = math.MaxInt32

// MortgageInput holds a validated mortgage request. The zero value is not
// usable; instances only come from NewMortgageInput, so every MortgageInput
// satisfies its range checks.
type MortgageInput struct {
	price       float64
	downPercent float64
	ratePercent float64
	termYears   int
}

// NewMortgageInput validates the four values in a fixed order and reports
// the first violation.
func NewMortgageInput(
	price float64,
	downPercent float64,
	ratePercent float64,
	termYears int,
) (MortgageInput, error) {
	if !(price > 0) {
		return MortgageInput{}, &ValueError{Message: "Home price must be greater than zero."}
	}
	if !(downPercent >= 0 && downPercent < 100) {
		return MortgageInput{}, &ValueError{Message: "Down payment percentage must be between 0 and 100 (exclusive)."}
	}
	if !(ratePercent > 0 && ratePercent < 100) {
		return MortgageInput{}, &ValueError{Message: "Interest rate percentage must be between 0 and 100 (exclusive)."}
	}
	if termYears <= 0 {
		return MortgageInput{}, &ValueError{Message: "Term in years must be greater than zero."}
	}
	if termYears > MaxTermYears {
		return MortgageInput{}, &ValueError{Message: fmt.Sprintf("Term in years must not exceed %d.", MaxTermYears)}
	}

	return MortgageInput{
		price:       price,
		downPercent: downPercent,
		ratePercent: ratePercent,
		termYears:   termYears,
	}, nil
}

func (m MortgageInput) Price() float64       { return m.price }
func (m MortgageInput) DownPercent() float64 { return m.downPercent }
func (m MortgageInput) RatePercent() float64 { return m.ratePercent }
func (m MortgageInput) TermYears() int       { return m.termYears }

type mortgageInputJSON struct {
	Price       float64 `json:"price"`
	DownPercent float64 `json:"downPercent"`
	RatePercent float64 `json:"ratePercent"`
	TermYears   int     `json:"termYears"`
}

func (m MortgageInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(mortgageInputJSON{
		Price:       m.price,
		DownPercent: m.downPercent,
		RatePercent: m.ratePercent,
		TermYears:   m.termYears,
	})
}

// UnmarshalJSON runs the same validation as NewMortgageInput.
func (m *MortgageInput) UnmarshalJSON(data []byte) error {
	var raw mortgageInputJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	input, err := NewMortgageInput(raw.Price, raw.DownPercent, raw.RatePercent, raw.TermYears)
	if err != nil {
		return err
	}
	*m = input
	return nil
}

// MortgageResult holds the amortization figures derived from a MortgageInput.
type MortgageResult struct {
	DownPaymentAmount float64
	LoanAmount        float64
	MonthlyRate       float64
	PaymentCount      int
	MonthlyPayment    float64
	TotalPaid         float64
	TotalInterest     float64
}

// Finite reports whether every figure is a finite number. Inputs near the
// float64 limits can overflow once multiplied out.
func (r MortgageResult) Finite() bool {
	for _, v := range []float64{
		r.DownPaymentAmount, r.LoanAmount, r.MonthlyRate,
		r.MonthlyPayment, r.TotalPaid, r.TotalInterest,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
