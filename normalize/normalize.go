// Package normalize rewrites loosely formatted user input into the canonical
// "price N, down N%, rate N%, term N" shape. It is best effort: the parser
// remains the only authority on whether a command is valid.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clauseKeywords = strings.NewReplacer(
		"down", ", down",
		"rate", ", rate",
		"term", ", term",
	)
	repeatedCommas = regexp.MustCompile(`,(\s*,)+`)
)

// Input returns the canonical form of raw.
//
// Four bare numbers ("450000 15 7 30", "450000, 15%, 7, 30") are mapped to
// price, down, rate and term in that order. Anything else is lower-cased and
// gets a comma inserted before each clause keyword.
func Input(raw string) string {
	input := strings.ToLower(strings.TrimSpace(raw))

	if canonical, ok := fromBareNumbers(input); ok {
		return canonical
	}

	input = clauseKeywords.Replace(input)
	input = repeatedCommas.ReplaceAllString(input, ",")
	if strings.HasPrefix(input, ",") {
		input = strings.TrimSpace(input[1:])
	}

	return input
}

func fromBareNumbers(input string) (string, bool) {
	parts := strings.FieldsFunc(strings.ReplaceAll(input, "%", ""), func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(parts) != 4 {
		return "", false
	}

	for _, part := range parts[:3] {
		if _, err := strconv.ParseFloat(part, 64); err != nil {
			return "", false
		}
	}
	if _, err := strconv.Atoi(parts[3]); err != nil {
		return "", false
	}

	return fmt.Sprintf("price %s, down %s%%, rate %s%%, term %s", parts[0], parts[1], parts[2], parts[3]), true
}
