package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/imgajeed76/gridsheet/internal/source"
	"github.com/imgajeed76/gridsheet/internal/ui"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSQLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Show the result of a PostgreSQL query in the grid view",
		Long: `Run a read-only query against a PostgreSQL database and show the
result set in the grid view.

Only read-only queries (SELECT, WITH, SHOW, ...) are allowed. The query runs
inside a read-only transaction.

The connection URL comes from --url, GRIDSHEET_SQL_URL or the sql.url config
key, in that order.

Examples:
  gridsheet sql --url postgres://me@localhost/shop "select * from orders"
  gridsheet sql "select id, total from orders" --json
  gridsheet sql "select * from pg_stat_activity" --raw | cut -f1,3`,
		Args: cobra.ExactArgs(1),
		RunE: runSQL,
	}

	cmd.Flags().String("url", "", "PostgreSQL connection URL")
	cmd.Flags().Int("timeout", 0, "Query timeout in seconds (default from config)")
	addDisplayFlags(cmd)

	return cmd
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := args[0]
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = app.cfg.SQL.URL
	}
	if url == "" {
		return util.NoDatabaseURLError()
	}
	if source.IsWriteQuery(query) {
		return util.WriteQueryError(query)
	}

	timeout := app.cfg.SQL.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout, _ = cmd.Flags().GetInt("timeout")
	}
	if timeout < 1 {
		return util.InvalidTimeoutError(timeout)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	var spinner *ui.Spinner
	if showProgress(cmd) {
		spinner = ui.NewSpinner("Running query")
		spinner.Start()
	}

	start := time.Now()
	s, err := source.Query(ctx, url, query)
	if err != nil {
		if spinner != nil {
			spinner.Error("Query failed")
		}
		log.Error().Err(err).Str("url", util.RedactURL(url)).Msg("query failed")
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("%d rows in %s", len(s.Records), time.Since(start).Round(time.Millisecond)))
	}

	log.Info().
		Str("url", util.RedactURL(url)).
		Int("rows", len(s.Records)).
		Dur("took", time.Since(start)).
		Msg("query finished")

	return display(cmd, s)
}

// showProgress reports whether a spinner may be drawn
func showProgress(cmd *cobra.Command) bool {
	raw, _ := cmd.Flags().GetBool("raw")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return !raw && !jsonOutput && term.IsTerminal(int(os.Stderr.Fd()))
}
