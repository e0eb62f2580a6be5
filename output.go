package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mortgage-parser/domain"
)

// maxSuggestionDistance is the largest edit distance for which a keyword is
// offered as a correction.
const maxSuggestionDistance = 2

var (
	errCalculationFailed = errors.New("calculation failed")

	money    = message.NewPrinter(language.English)
	keywords = []string{"price", "down", "rate", "term"}

	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgYellow)
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "============================================")
	headingColor.Fprintln(w, "            Mortgage Parser")
	fmt.Fprintln(w, "============================================")
	fmt.Fprintln(w, "Type your mortgage command, 'help' for help, 'history' for recent results, or 'quit' to exit.")
	fmt.Fprintln(w)
}

func printHelp(w io.Writer) {
	headingColor.Fprintln(w, "--- How to Use Mortgage Parser ---")
	fmt.Fprintln(w, `You can enter your mortgage information in ANY of these formats:

  1) Full command with keywords:
     price 450000, down 15%, rate 7%, term 30

  2) Just the numbers:
     450000 15 7 30

  3) Numbers separated by commas:
     450000, 15, 7, 30

  4) Keywords without commas:
     price 450000 down 15% rate 7% term 30

The '%' after the down payment is required; after the rate it is optional.
Type 'quit' to exit.
--------------------------------------------`)
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, quote domain.Quote) {
	input := quote.Input

	fmt.Fprintln(w)
	headingColor.Fprintln(w, "Mortgage Summary")
	fmt.Fprintf(w, "Home Price:          %s\n", dollars(input.Price()))
	fmt.Fprintf(w, "Down Payment:        %s%%\n", percent(input.DownPercent()))
	fmt.Fprintf(w, "Down Payment Amount: %s\n", dollars(quote.DownPaymentAmount.InexactFloat64()))
	fmt.Fprintf(w, "Loan Amount:         %s\n", dollars(quote.LoanAmount.InexactFloat64()))
	fmt.Fprintf(w, "Interest Rate:       %s%%\n", percent(input.RatePercent()))
	fmt.Fprintf(w, "Term:                %d years\n", input.TermYears())
	fmt.Fprintf(w, "Monthly Payment:     %s\n", dollars(quote.MonthlyPayment.InexactFloat64()))
	fmt.Fprintf(w, "Total Paid:          %s\n", dollars(quote.TotalPaid.InexactFloat64()))
	fmt.Fprintf(w, "Total Interest:      %s\n", dollars(quote.TotalInterest.InexactFloat64()))
	fmt.Fprintln(w)
}

func printHistory(w io.Writer, quotes []domain.Quote) {
	if len(quotes) == 0 {
		fmt.Fprintln(w, "No calculations yet.")
		return
	}
	for _, q := range quotes {
		fmt.Fprintf(w, "%s  %-45s %s/month\n",
			q.CreatedAt.Local().Format("15:04:05"), q.Command, dollars(q.MonthlyPayment.InexactFloat64()))
	}
}

// printError reports a pipeline error for the normalized command.
func printError(w io.Writer, command string, err error) {
	label := "Error:"
	if kind, ok := domain.KindOf(err); ok {
		switch kind {
		case domain.KindLexical:
			label = "Lexical Error:"
		case domain.KindSyntax:
			label = "Syntax Error:"
		case domain.KindValue:
			label = "Value Error:"
		}
	}

	fmt.Fprintln(w)
	errorColor.Fprint(w, label)
	fmt.Fprintf(w, " %s\n", err)
	if kw := suggestKeyword(command, err); kw != "" {
		hintColor.Fprintf(w, "Did you mean '%s'?\n", kw)
	}
	fmt.Fprintln(w)
}

// suggestKeyword returns the keyword closest to the word a lexical error
// stopped at, if any is close enough.
func suggestKeyword(command string, err error) string {
	var lexErr *domain.LexError
	if !errors.As(err, &lexErr) {
		return ""
	}

	word := wordAt(command, lexErr.Position)
	if word == "" {
		return ""
	}

	best, bestDistance := "", maxSuggestionDistance+1
	for _, kw := range keywords {
		if d := fuzzy.LevenshteinDistance(word, kw); d < bestDistance {
			best, bestDistance = kw, d
		}
	}
	return best
}

func wordAt(s string, pos int) string {
	if pos < 0 || pos >= len(s) {
		return ""
	}
	end := pos
	for end < len(s) && isASCIILetter(s[end]) {
		end++
	}
	return strings.ToLower(s[pos:end])
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func dollars(v float64) string {
	return money.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
