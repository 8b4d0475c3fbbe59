// pattern: Imperative Shell
package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"feeddeck/internal/events"
	"feeddeck/internal/feed"
	"feeddeck/internal/instance"
)

// ResolveDataDir returns the data directory for lock/port/log files.
// If configDir is specified, uses that; otherwise uses ~/.config/feeddeck.
func ResolveDataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "feeddeck")
	}
	return filepath.Join(home, ".config", "feeddeck")
}

// BuildApp creates and configures the CLI application with all commands.
func BuildApp(version string, configDir string) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "import",
		Summary: "Convert a Twitter/X archive into a categories file",
		Usage:   "Usage: feeddeck import <archive.json|archive.js> [flags]",
		Run: func(args []string) error {
			return runImportCommand(configDir, args)
		},
	})

	app.AddCommand(&Command{
		Name:    "status",
		Summary: "Print the focused category of the running instance",
		Usage:   "Usage: feeddeck status",
		Run: func(args []string) error {
			return runStatusCommand(configDir)
		},
	})

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: feeddeck version",
		Run: func(args []string) error {
			fmt.Println(version)
			return nil
		},
	})

	return app
}

// runImportCommand reads an archive file, converts it into per-year
// categories, and writes the categories YAML file.
func runImportCommand(configDir string, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	output := fs.StringP("output", "o", "", "output categories file (default: <data-dir>/categories.yaml)")
	minLength := fs.Int("min-length", 0, "drop tweets with shorter text")
	minFavorites := fs.Int("min-favorites", 0, "drop tweets below this favorite count")
	maxPerCategory := fs.Int("max-per-category", 0, "keep only the top-N most-liked tweets per year (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: feeddeck import <archive.json|archive.js> [flags]")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	categories, err := feed.ImportArchive(data, feed.ImportOptions{
		MinTextLength:  *minLength,
		MinFavorites:   *minFavorites,
		MaxPerCategory: *maxPerCategory,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		out = filepath.Join(ResolveDataDir(configDir), "categories.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := feed.SaveCategories(out, categories); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, c := range categories {
		total += len(c.Items)
	}
	fmt.Printf("Wrote %d categories (%d items) to %s\n", len(categories), total, out)
	return nil
}

// runStatusCommand queries the running instance's state mirror.
func runStatusCommand(configDir string) error {
	dataDir := ResolveDataDir(configDir)
	baseURL, err := instance.Discover(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	snap, err := fetchState(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatStatus(snap))
	return nil
}

// fetchState retrieves the state snapshot from a running instance.
func fetchState(baseURL string) (events.Snapshot, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/api/state")
	if err != nil {
		return events.Snapshot{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return events.Snapshot{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var snap events.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return events.Snapshot{}, fmt.Errorf("decode state: %w", err)
	}
	return snap, nil
}

// formatStatus renders a snapshot for the terminal.
func formatStatus(snap events.Snapshot) string {
	if len(snap.Categories) == 0 {
		return "no categories loaded\n"
	}
	focused := snap.Categories[snap.FocusedIndex]
	out := fmt.Sprintf("focused: %s (%d/%d), offset %.0f\n",
		focused.Label, snap.FocusedIndex+1, len(snap.Categories), snap.ScrollOffset)
	for _, c := range snap.Categories {
		marker := " "
		if c.Focus == "focused" {
			marker = ">"
		}
		out += fmt.Sprintf("%s %-12s %d items\n", marker, c.Label, c.ItemCount)
	}
	return out
}
