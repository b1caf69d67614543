package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks across every client",
	Long: `List tasks across every client and project, with optional filters.

Examples:
  sratask ls --assignee Dana --open
  sratask ls --status pending-client --engagement tax
  sratask ls --blocked`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s := a.session.State()
		today := a.session.Today()

		filters, err := listFilters(cmd)
		if err != nil {
			return err
		}
		var tasks []board.TaskWithDetails
		for _, t := range state.Enriched(s) {
			keep := true
			for _, f := range filters {
				if !f(t, s) {
					keep = false
					break
				}
			}
			if keep {
				tasks = append(tasks, t)
			}
		}

		sortFlag, _ := cmd.Flags().GetString("sort")
		sortBy, err := parser.ParseSortBy(sortFlag)
		if err != nil {
			return err
		}
		tasks = board.SortBucket(tasks, sortBy)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if tasks == nil {
				tasks = []board.TaskWithDetails{}
			}
			return printJSON(tasks)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'sratask add \"task title\"' to create one.")
			return nil
		}
		renderTaskTable(tasks, s.Snapshot.Tasks, today)
		fmt.Printf("\n%d tasks\n", len(tasks))
		return nil
	}),
}

type taskFilter func(board.TaskWithDetails, state.State) bool

func listFilters(cmd *cobra.Command) ([]taskFilter, error) {
	var filters []taskFilter
	flags := cmd.Flags()

	if v, _ := flags.GetString("status"); v != "" {
		status, err := parser.ParseStatus(v)
		if err != nil {
			return nil, err
		}
		filters = append(filters, func(t board.TaskWithDetails, _ state.State) bool { return t.Status == status })
	}
	if v, _ := flags.GetString("engagement"); v != "" {
		e, err := parser.ParseEngagementType(v)
		if err != nil {
			return nil, err
		}
		filters = append(filters, func(t board.TaskWithDetails, _ state.State) bool { return t.EngagementType == e })
	}
	if v, _ := flags.GetString("assignee"); v != "" {
		filters = append(filters, func(t board.TaskWithDetails, _ state.State) bool {
			return strings.EqualFold(t.Assignee.Name, v)
		})
	}
	if v, _ := flags.GetString("client"); v != "" {
		filters = append(filters, func(t board.TaskWithDetails, _ state.State) bool {
			return t.ClientID == v || strings.EqualFold(t.ClientName, v)
		})
	}
	if open, _ := flags.GetBool("open"); open {
		filters = append(filters, func(t board.TaskWithDetails, _ state.State) bool { return t.Status != models.StatusDone })
	}
	if blocked, _ := flags.GetBool("blocked"); blocked {
		filters = append(filters, func(t board.TaskWithDetails, s state.State) bool {
			return state.Dependency(s, t.Task).Blocked()
		})
	}
	return filters, nil
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status")
	listCmd.Flags().StringP("client", "c", "", "Filter by client name or id")
	listCmd.Flags().StringP("assignee", "a", "", "Filter by assignee")
	listCmd.Flags().String("engagement", "", "Filter by engagement type")
	listCmd.Flags().Bool("open", false, "Hide Done tasks")
	listCmd.Flags().Bool("blocked", false, "Only tasks waiting on an unfinished prerequisite")
	listCmd.Flags().String("sort", "due", "Sort: default, priority, due or assignee")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
