// Package cmd implements the CLI application to manage a depot.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jfellner/depot"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&dividendCmd{}, "transactions")
	c.Register(&interestCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&simulateCmd{}, "reports")
	c.Register(&taxCmd{}, "reports")
	c.Register(&xirrCmd{}, "reports")

	c.Register(&importCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("file", "depot.jsonl", "Path to the portfolio file (JSONL format)")
var plain = flag.Bool("plain", false, "Print reports as raw markdown instead of styled terminal output")

// DecodePortfolio loads the portfolio from the app portfolio file.
// A missing file yields an empty portfolio.
func DecodePortfolio() (*depot.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, starting from an empty one")
		return depot.NewPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return depot.DecodePortfolio(f)
}

// AppendTransaction appends a single transaction to the app portfolio file.
func AppendTransaction(tx depot.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*portfolioFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()
	if err := depot.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// display prints a markdown report, styled for the terminal unless -plain
// was requested or styling fails.
func display(markdown string) subcommands.ExitStatus {
	if !*plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(markdown); err == nil {
				fmt.Print(out)
				return subcommands.ExitSuccess
			}
		}
	}
	fmt.Println(markdown)
	return subcommands.ExitSuccess
}
