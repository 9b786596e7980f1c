package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/budgetiq/budget"
	"github.com/budgetiq/budget/cmd"
)

func main() {
	// API keys for the scan command may live in a .env file.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands. It only acts
// when invoked by the shell completion machinery.
func completion() {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	addFlags := map[string]complete.Predictor{
		"a": predict.Nothing,
		"m": predict.Nothing,
		"d": predict.Nothing,
		"c": predict.Set(budget.Categories),
		"n": predict.Nothing,
	}

	biq := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-path": predict.Dirs("*"),
			"store":     predict.Set{"file", "sqlite"},
		},
		Sub: map[string]*complete.Command{
			"init":     {},
			"settings": {},
			"expense":  {Flags: addFlags},
			"income":   {Flags: addFlags},
			"extra":    {Flags: addFlags},
			"savings":  {Flags: addFlags},
			"scan":     {Flags: map[string]complete.Predictor{"i": predict.Files("*"), "ai": predict.Set{"gemini", "openai"}}},
			"tx":       {Flags: dateFlags},
			"summary":  {Flags: dateFlags},
			"insights": {Flags: map[string]complete.Predictor{"g": predict.Set{"weekly", "monthly"}}},
			"topic":    {},
		},
	}
	biq.Complete("biq")
}
