package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/realitybuilders/rbew_search/search/catalog"
	"github.com/realitybuilders/rbew_search/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	configPath string
}

func (o *rootOptions) config() (*utils.Config, error) {
	return utils.NewConfig(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "rbew",
		Short: "Browse and search the RBEW site from the terminal",
		Long: `Opens the RBEW site in the terminal. Press / to search projects, pages,
music and artists; local pages open in place, Reality Radio Network links
open in your browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			config, err := opts.config()
			if err != nil {
				return err
			}
			return runTUI(config)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", utils.DefaultConfigPath(), "config file")
	root.AddCommand(
		newSearchCmd(),
		newPageCmd(opts),
		newCatalogCmd(),
	)
	return root
}

func runTUI(config *utils.Config) error {
	// Setup logging.
	if err := os.MkdirAll(filepath.Dir(config.LogPath), 0700); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(config.LogPath, "debug")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	// Create a new bubbletea Model
	m := New(catalog.All(), config)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		log.Printf("program exited: %v", err)
		return err
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rbew:", err)
		os.Exit(1)
	}
}
