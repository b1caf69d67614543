package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find tasks with a plain-language question",
	Long: `Ask the AI assistant which tasks match a plain-language query.

The assistant sees a redacted copy of every task (title, description,
priority, status, dates, assignee, engagement and project) and today's date,
so relative questions work.

Examples:
  sratask search "overdue tax work for Dana"
  sratask search "what is due this week" --json`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		query := strings.Join(args, " ")
		s := a.session.Search(cmd.Context(), query)
		if s.Search.Error != "" {
			return fmt.Errorf("%s", s.Search.Error)
		}

		results := state.SearchResults(s)
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return renderSearchJSON(results, query)
		}
		renderSearchTable(results, s.Snapshot.Tasks, query, a.session.Today())
		return nil
	}),
}

// renderSearchJSON outputs search results as JSON
func renderSearchJSON(tasks []board.TaskWithDetails, query string) error {
	type SearchResult struct {
		Query string                  `json:"query"`
		Count int                     `json:"count"`
		Tasks []board.TaskWithDetails `json:"tasks"`
	}
	if tasks == nil {
		tasks = []board.TaskWithDetails{}
	}
	return printJSON(SearchResult{Query: query, Count: len(tasks), Tasks: tasks})
}

// renderSearchTable outputs search results as a formatted table
func renderSearchTable(tasks []board.TaskWithDetails, all []models.Task, query string, today models.Date) {
	fmt.Printf("Search results for '%s' (%d found):\n", query, len(tasks))
	if len(tasks) == 0 {
		fmt.Println("No tasks found matching your search.")
		return
	}
	fmt.Println()
	renderTaskTable(tasks, all, today)
}

func init() {
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
