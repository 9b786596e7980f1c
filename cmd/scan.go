package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/budgetiq/budget/extract"
	"github.com/budgetiq/budget/renderer"
)

type scanCmd struct {
	image   string
	backend string
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "extract an expense draft from a receipt photo" }
func (*scanCmd) Usage() string {
	return `biq scan -i <image> [-ai gemini|openai]

  Sends the receipt image to a vision model and shows the extracted draft:
  amount, merchant, date and category. The draft is saved as an expense only
  after you confirm it.

Usage Examples:
# Scan a receipt with Gemini (needs GEMINI_API_KEY).
$ biq scan -i receipt.jpg

`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.image, "i", "", "Receipt image file (jpeg, png, webp)")
	f.StringVar(&c.backend, "ai", "gemini", "Vision model to use (gemini, openai)")
}

func (c *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.image == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	image, err := os.ReadFile(c.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image %q: %v\n", c.image, err)
		return subcommands.ExitFailure
	}
	mimeType := mime.TypeByExtension(filepath.Ext(c.image))
	if !strings.HasPrefix(mimeType, "image/") {
		fmt.Fprintf(os.Stderr, "Error: %q is not an image file\n", c.image)
		return subcommands.ExitUsageError
	}

	backend, err := c.newBackend(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	draft, err := extract.NewService(backend).Extract(ctx, mimeType, image)
	if err != nil {
		if errors.Is(err, extract.ErrBusy) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return subcommands.ExitFailure
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	settings, _, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Amount:   %s %s\n", draft.Amount, settings.Currency)
	fmt.Printf("Merchant: %s\n", draft.Merchant)
	fmt.Printf("Date:     %s\n", draft.Date)
	fmt.Printf("Category: %s\n", draft.Category)
	fmt.Print("Save as expense? [y/N] ")

	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Discarded.")
		return subcommands.ExitSuccess
	}

	tx, err := draft.Expense(settings.Currency).Validate(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Append(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

func (c *scanCmd) newBackend(ctx context.Context) (extract.Backend, error) {
	switch c.backend {
	case "gemini":
		return extract.NewGeminiBackend(ctx)
	case "openai":
		return extract.NewOpenAIBackend()
	default:
		return nil, fmt.Errorf("unknown AI backend %q (want gemini or openai)", c.backend)
	}
}
