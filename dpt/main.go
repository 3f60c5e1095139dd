package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/jfellner/depot/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before anything else and exits on its own when
	// invoked by the shell.
	completion().Complete("dpt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	modes := predict.Set{"combined", "realized", "holdings"}
	regimes := predict.Set{"capital", "crypto", "futures"}
	filings := predict.Set{"single", "married"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":  predict.Files("*.jsonl"),
			"plain": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"summary": {Flags: map[string]complete.Predictor{
				"y":    predict.Something,
				"mode": modes,
			}},
			"simulate": {Flags: map[string]complete.Predictor{
				"plan":    predict.Something,
				"until":   predict.Something,
				"monthly": predict.Nothing,
			}},
			"tax": {Flags: map[string]complete.Predictor{
				"regime":         regimes,
				"filing":         filings,
				"y":              predict.Something,
				"income":         predict.Something,
				"losses":         predict.Something,
				"allowance-left": predict.Something,
				"church":         predict.Something,
				"marginal":       predict.Something,
			}},
			"xirr":     {Flags: map[string]complete.Predictor{"guess": predict.Something}},
			"buy":      {},
			"sell":     {},
			"dividend": {},
			"interest": {},
			"import": {Flags: map[string]complete.Predictor{
				"rates":  predict.Files("*.json"),
				"closes": predict.Files("*.json"),
			}},
			"topic": {Args: predict.Set{"readme", "simulation", "taxes", "ledger"}},
		},
	}
}
