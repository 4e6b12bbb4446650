// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	wealth "github.com/jhonatanorellana89-hue/wealthcmd"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	// Side effects only: a missing .env file is fine.
	godotenv.Load()

	c.Register(&addCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")

	c.Register(&newAccountCmd{}, "entities")
	c.Register(&newAssetCmd{}, "entities")
	c.Register(&newEquityCmd{}, "entities")
	c.Register(&newDebtCmd{}, "entities")
	c.Register(&newCategoryCmd{}, "entities")
	c.Register(&newVentureCmd{}, "entities")
	c.Register(&newRecurringCmd{}, "entities")
	c.Register(&listCmd{}, "entities")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&spendingCmd{}, "reports")
	c.Register(&paydownCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&recurringRunCmd{}, "reports")

	c.Register(&exportJSONCmd{}, "exchange")
	c.Register(&exportCSVCmd{}, "exchange")
	c.Register(&importCmd{}, "exchange")

	c.Register(&quickaddCmd{}, "ai")
	c.Register(&adviseCmd{}, "ai")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".wealth", "Path to the data folder holding the ledger snapshot")

// fileStore is the CLI's Store: one JSON file per key inside the data folder.
type fileStore struct{ dir string }

func (s fileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s fileStore) Set(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key+".json"), data, 0644)
}

// LoadLedger loads the snapshot from the app data folder, seeding a
// fresh ledger on first run. Milestones crossed by subsequent mutations
// are printed as they happen.
func LoadLedger() (*wealth.Ledger, error) {
	ledger, err := wealth.Load(fileStore{*dataDir})
	if err != nil {
		return nil, err
	}
	ledger.SetNotifier(func(m wealth.Milestone) {
		fmt.Println(m.Message)
	})
	return ledger, nil
}

// SaveLedger writes the snapshot back to the app data folder.
func SaveLedger(l *wealth.Ledger) error {
	return wealth.Save(fileStore{*dataDir}, l)
}

// parseAmount parses a decimal -amount flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseDateFlag parses a -date flag value, today when empty.
func parseDateFlag(s string) (wealth.Date, error) {
	if s == "" {
		return wealth.Today(), nil
	}
	return wealth.ParseDate(s)
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
