package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/jfellner/depot"
)

// txCmd is the shared implementation of the four transaction commands.
type txCmd struct {
	kind depot.TxKind

	investment string
	date       string
	quantity   float64
	price      float64
	amount     float64
	currency   string
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.investment, "i", "", "ID of the investment the record belongs to.")
	f.StringVar(&p.date, "d", "", "Date of the record (defaults to today).")
	f.Float64Var(&p.quantity, "q", 0, "Quantity of units.")
	f.Float64Var(&p.price, "p", 0, "Unit price.")
	f.Float64Var(&p.amount, "amount", 0, "Explicit total amount, overrides quantity×price.")
	f.StringVar(&p.currency, "c", depot.BaseCurrency, "Currency of the price and amount.")
}

func (p *txCmd) record() (depot.Transaction, error) {
	if p.investment == "" {
		return depot.Transaction{}, fmt.Errorf("missing -i investment ID")
	}
	on := depot.Today()
	if p.date != "" {
		var err error
		on, err = depot.ParseDate(p.date)
		if err != nil {
			return depot.Transaction{}, err
		}
	}
	tx := depot.NewTransaction(uuid.NewString(), p.investment, p.kind, on,
		depot.Q(p.quantity), depot.M(p.price, p.currency))
	if p.amount != 0 {
		tx = tx.WithAmount(depot.M(p.amount, p.currency))
	}
	return tx, nil
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := p.record()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendTransaction(tx)
}

type buyCmd struct{ txCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of units" }
func (*buyCmd) Usage() string {
	return `dpt buy -i <investment> -q <quantity> -p <unit_price> [-d <date>] [-c <currency>]
`
}
func (p *buyCmd) SetFlags(f *flag.FlagSet) { p.kind = depot.Buy; p.txCmd.SetFlags(f) }

type sellCmd struct{ txCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of units" }
func (*sellCmd) Usage() string {
	return `dpt sell -i <investment> -q <quantity> -p <unit_price> [-d <date>] [-c <currency>]
`
}
func (p *sellCmd) SetFlags(f *flag.FlagSet) { p.kind = depot.Sell; p.txCmd.SetFlags(f) }

type dividendCmd struct{ txCmd }

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend payment" }
func (*dividendCmd) Usage() string {
	return `dpt dividend -i <investment> -amount <total> [-d <date>] [-c <currency>]
`
}
func (p *dividendCmd) SetFlags(f *flag.FlagSet) { p.kind = depot.Dividend; p.txCmd.SetFlags(f) }

type interestCmd struct{ txCmd }

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "record an interest payment" }
func (*interestCmd) Usage() string {
	return `dpt interest -i <investment> -amount <total> [-d <date>] [-c <currency>]
`
}
func (p *interestCmd) SetFlags(f *flag.FlagSet) { p.kind = depot.Interest; p.txCmd.SetFlags(f) }
