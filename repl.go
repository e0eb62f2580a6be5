package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"mortgage-parser/normalize"
)

// runREPL reads one command per line until quit, exit or end of input.
func runREPL(ctx context.Context, in io.Reader, out io.Writer, a *app) error {
	printBanner(out)
	printHelp(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter mortgage command: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		raw := strings.TrimSpace(scanner.Text())
		switch {
		case raw == "":
			fmt.Fprintln(out, "Please enter a command or type 'help'.")
		case strings.EqualFold(raw, "quit"), strings.EqualFold(raw, "exit"):
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case strings.EqualFold(raw, "help"):
			printHelp(out)
		case strings.EqualFold(raw, "history"):
			quotes, err := a.service.History(0)
			if err != nil {
				return fmt.Errorf("reading history: %w", err)
			}
			printHistory(out, quotes)
		default:
			command := normalize.Input(raw)
			fmt.Fprintf(out, "\nNormalized Input %s\n", command)

			quote, err := a.service.Quote(ctx, raw)
			if err != nil {
				printError(out, command, err)
				continue
			}
			printSummary(out, quote)
		}
	}
}
