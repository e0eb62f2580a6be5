package service

import (
	"math"

	"mortgage-parser/domain"
)

// Calculate derives the amortization figures for a validated mortgage.
// It has no side effects and returns the same result for the same input.
func Calculate(input domain.MortgageInput) domain.MortgageResult {
	downPayment := input.Price() * (input.DownPercent() / 100)
	loan := input.Price() - downPayment
	monthlyRate := (input.RatePercent() / 100) / MonthsPerYear
	payments := input.TermYears() * MonthsPerYear

	payment := monthlyPayment(loan, monthlyRate, payments)
	totalPaid := payment * float64(payments)

	return domain.MortgageResult{
		DownPaymentAmount: downPayment,
		LoanAmount:        loan,
		MonthlyRate:       monthlyRate,
		PaymentCount:      payments,
		MonthlyPayment:    payment,
		TotalPaid:         totalPaid,
		TotalInterest:     totalPaid - loan,
	}
}

// monthlyPayment applies M = P*r*(1+r)^n / ((1+r)^n - 1).
func monthlyPayment(principal, rate float64, payments int) float64 {
	n := float64(payments)
	if rate == 0 {
		return principal / n
	}

	growth := math.Pow(1+rate, n)
	// 1+r redondea a 1 cuando r es diminuta; se usa el límite P/n
	if growth == 1 {
		return principal / n
	}
	// con plazos enormes (1+r)^n desborda; el límite de la fórmula es P*r
	if math.IsInf(growth, 1) {
		return principal * rate
	}

	return principal * rate * growth / (growth - 1)
}
