package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/glamour"
	"github.com/realitybuilders/rbew_search/router"
	"github.com/realitybuilders/rbew_search/search"
	"github.com/realitybuilders/rbew_search/search/catalog"
	"github.com/realitybuilders/rbew_search/searchbar"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// rowWidth is wide enough that CLI rows are never truncated.
const rowWidth = 1 << 10

// jsonHit is a record plus the visual a result row would show.
type jsonHit struct {
	search.Record
	Visual search.Visual `json:"visual"`
}

func toJSONHit(r search.Record, _ int) jsonHit {
	return jsonHit{Record: r, Visual: r.Visual()}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRows writes one rendered row per record, without colours unless w
// is a terminal.
func printRows(w io.Writer, records []search.Record, extra func(search.Record) string) {
	plain := !isTerminal(w)
	for _, r := range records {
		line := searchbar.RenderRow(r, false, rowWidth) + "  " + extra(r)
		if plain {
			line = stripansi.Strip(line)
		}
		fmt.Fprintln(w, line)
	}
}

func newSearchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the catalog",
		Long: `Matches the query against the title and subtitle of every catalog
record, case-insensitively, and prints at most 8 hits in catalog order.

  rbew search gold
  rbew search --json frame state`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := search.NewSearcher(catalog.All()).Search(strings.Join(args, " "))
			if res.Err != nil {
				return res.Err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, lo.Map(res.Hits, toJSONHit))
			}
			if len(res.Hits) == 0 {
				fmt.Fprintln(out, "No results found")
				return nil
			}
			printRows(out, res.Hits, func(r search.Record) string { return r.Target })
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print hits as JSON")
	return cmd
}

func newPageCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "page <path>",
		Short: "Print a site page",
		Long: `Prints the page behind an in-site path. Terminal output is rendered
with glamour; pipe/redirect gets raw markdown.

  rbew page /about
  rbew page /projects/framestate-rp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.config()
			if err != nil {
				return err
			}

			file, err := router.New(config.ContentRoot).Resolve(args[0])
			if err != nil {
				return err
			}
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read page %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if !raw && isTerminal(out) {
				rendered, err := glamour.Render(string(content), "dark")
				if err == nil {
					fmt.Fprint(out, rendered)
					return nil
				}
			}

			fmt.Fprint(out, string(content))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print raw markdown even on a terminal")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List and validate the search catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records := catalog.All()
			if err := search.Validate(records); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, lo.Map(records, toJSONHit))
			}

			byKind := lo.GroupBy(records, func(r search.Record) search.Kind { return r.Kind })
			printRows(out, records, func(r search.Record) string {
				return fmt.Sprintf("[%s] %s", r.Kind, r.Target)
			})
			counts := lo.Map(search.Kinds, func(k search.Kind, _ int) string {
				return fmt.Sprintf("%d %s", len(byKind[k]), k)
			})
			fmt.Fprintf(out, "%d records (%d local, %d external): %s\n",
				len(records), len(catalog.Local()), len(catalog.External()), strings.Join(counts, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	return cmd
}
