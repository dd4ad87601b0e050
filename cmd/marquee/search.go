package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/filter"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/spf13/cobra"
)

// errSearchFailed marks a search whose failure was already reported on stderr
var errSearchFailed = errors.New("search failed")

type searchOptions struct {
	filterExpr string
	limit      int
}

func newSearchCmd(a *app) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search movies and print the results",
		Long: `Run a single search and print the results. Output is a table on a
terminal and tab-separated otherwise (id, title, year, rating, votes).

Filter expressions can use: title, original_title, overview, year, rating,
votes, popularity, adult, language, has_poster.`,
		Example: `  marquee search batman
  marquee search alien --filter 'year < 1990 && rating >= 7'
  marquee search heat --limit 5 | cut -f2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.filterExpr, "filter", "f", "", "filter expression applied to the results")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "maximum number of results to print (0 = all)")
	return cmd
}

// runSearch drives one Submit through the orchestrator and prints the outcome
func (a *app) runSearch(cmd *cobra.Command, query string, opts *searchOptions) error {
	if opts.limit < 0 {
		return fmt.Errorf("invalid --limit %d: must not be negative", opts.limit)
	}

	// Compile before the request so a typo fails fast
	var f *filter.Filter
	if opts.filterExpr != "" {
		var err error
		f, err = filter.Compile(opts.filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	client, err := a.newClient()
	if err != nil {
		return err
	}

	notifier := newStreamNotifier(cmd.ErrOrStderr())
	// No loader to keep on screen, so there is nothing to settle
	orchestrator := search.New(client, notifier,
		search.WithObserver(search.ObserverFunc(func(state search.State) {
			a.logger.Debug("search state",
				"mode", state.Mode().String(), "results", len(state.Movies), "version", state.Version)
		})),
		search.WithLogger(a.logger),
		search.WithSettleDelay(0),
	)

	a.logger.Info("searching", "query", query, "filter", opts.filterExpr)
	orchestrator.Submit(cmd.Context(), query)

	state := orchestrator.Snapshot()
	if state.HasError {
		return errSearchFailed
	}

	movies := state.Movies
	if f != nil {
		movies, err = f.Apply(movies)
		if err != nil {
			return err
		}
	}
	if opts.limit > 0 && len(movies) > opts.limit {
		movies = movies[:opts.limit]
	}

	return writeMovies(cmd.OutOrStdout(), movies)
}
