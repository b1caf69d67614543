package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "SQL tools: format queries, print the schema, run read-only queries",
}

var sqlFormatCmd = &cobra.Command{
	Use:   "format [query]",
	Short: "Pretty-print a SQL query with the AI assistant",
	Long: `Pretty-print a SQL query with the AI assistant. Reads the query from
standard input when no argument is given.

Example:
  echo "select * from tasks where status='Done'" | sratask sql format`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		query, err := queryArg(cmd, args)
		if err != nil {
			return err
		}
		formatted, err := a.session.FormatSQL(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("%s", a.session.UserMessage(err))
		}
		fmt.Println(formatted)
		return nil
	}),
}

var sqlSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the database schema",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		schema, err := a.store.Schema(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(schema)
		return nil
	}),
}

var sqlRunCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run a read-only SELECT or WITH query",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		query, err := queryArg(cmd, args)
		if err != nil {
			return err
		}
		result, err := a.store.RunQuery(cmd.Context(), query)
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(result)
		}

		widths := make([]int, len(result.Columns))
		for i, c := range result.Columns {
			widths[i] = len(c)
		}
		for _, row := range result.Rows {
			for i, v := range row {
				widths[i] = min(max(widths[i], len([]rune(v))), 40)
			}
		}
		printRow := func(values []string) {
			cells := make([]string, len(values))
			for i, v := range values {
				cells[i] = fmt.Sprintf("%-*s", widths[i], truncate(v, widths[i]))
			}
			fmt.Println(strings.TrimRight(strings.Join(cells, "  "), " "))
		}
		printRow(result.Columns)
		total := 0
		for _, w := range widths {
			total += w + 2
		}
		fmt.Println(strings.Repeat("-", max(total-2, 0)))
		for _, row := range result.Rows {
			printRow(row)
		}
		fmt.Printf("\n(%d rows)\n", len(result.Rows))
		return nil
	}),
}

// queryArg joins the arguments, or reads standard input when there are none
func queryArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read query: %w", err)
	}
	query := strings.TrimSpace(string(data))
	if query == "" {
		return "", fmt.Errorf("no query given")
	}
	return query, nil
}

func init() {
	sqlCmd.AddCommand(sqlFormatCmd)
	sqlCmd.AddCommand(sqlSchemaCmd)
	sqlCmd.AddCommand(sqlRunCmd)

	sqlRunCmd.Flags().Bool("json", false, "Output as JSON")
}
