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

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the kanban board for a client or project",
	Long: `Show the kanban board: one column per status, filtered to a single client
or project and sorted inside every column.

Examples:
  sratask board                         - First client, default order
  sratask board --client "Acme Ltd"     - Board for one client
  sratask board --project acme-vat -s due
  sratask board --json`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s, err := applyViewFlags(cmd, a.session)
		if err != nil {
			return err
		}
		b := state.Board(s)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(b)
		}
		renderBoard(s, b, a.session.Today())
		return nil
	}),
}

// applyViewFlags turns --client, --project and --sort into view events
func applyViewFlags(cmd *cobra.Command, session *state.Session) (state.State, error) {
	s := session.State()

	if ref, _ := cmd.Flags().GetString("project"); ref != "" {
		p, err := resolveProject(s.Snapshot, ref)
		if err != nil {
			return s, err
		}
		session.Dispatch(state.ViewModeChanged{Mode: board.ViewByProject})
		s = session.Dispatch(state.FilterSelected{ID: p.ID})
	} else if ref, _ := cmd.Flags().GetString("client"); ref != "" {
		c, err := resolveClient(s.Snapshot, ref)
		if err != nil {
			return s, err
		}
		session.Dispatch(state.ViewModeChanged{Mode: board.ViewByClient})
		s = session.Dispatch(state.FilterSelected{ID: c.ID})
	}

	if cmd.Flags().Lookup("sort") != nil && cmd.Flags().Changed("sort") {
		sortFlag, _ := cmd.Flags().GetString("sort")
		sortBy, err := parser.ParseSortBy(sortFlag)
		if err != nil {
			return s, err
		}
		s = session.Dispatch(state.SortChanged{SortBy: sortBy})
	}
	return s, nil
}

// filterName is the client or project name the board is showing
func filterName(s state.State) string {
	for _, o := range s.FilterOptions() {
		if o.ID == s.View.FilterID {
			return o.Name
		}
	}
	return "nothing selected"
}

func renderBoard(s state.State, b board.Board, today models.Date) {
	fmt.Printf("Board for %s %s (sorted by %s, %d tasks)\n", s.View.Mode, filterName(s), s.View.SortBy, b.TaskCount())
	if s.View.FilterID == "" {
		fmt.Println("No clients or projects yet. Use 'sratask client add' to create one.")
		return
	}

	for _, col := range b.Columns {
		fmt.Printf("\n%s (%d)\n", strings.ToUpper(col.Title), len(col.Tasks))
		fmt.Println(strings.Repeat("-", 60))
		if len(col.Tasks) == 0 {
			fmt.Println("  (empty)")
			continue
		}
		for _, t := range col.Tasks {
			lock := " "
			if board.ResolveDependency(t.Task, s.Snapshot.Tasks).Blocked() {
				lock = "#"
			}
			done, total := t.SubtaskProgress()
			progress := ""
			if total > 0 {
				progress = fmt.Sprintf(" [%d/%d]", done, total)
			}
			fmt.Printf("%s%s %-8s %-34s %-7s %-9s %s%s\n",
				urgencyMarker(t.DueDate, today),
				lock,
				shortID(t.ID),
				truncate(t.Title, 34),
				t.Priority,
				parser.ShortDue(t.DueDate, today),
				t.Assignee.Name,
				progress)
		}
	}
	fmt.Println("\n!! overdue   ! due within 2 days   # blocked by a prerequisite")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("client", "c", "", "Client name or id")
	cmd.Flags().StringP("project", "p", "", "Project name or id")
	cmd.Flags().Bool("json", false, "Output as JSON")
}

func init() {
	addViewFlags(boardCmd)
	boardCmd.Flags().StringP("sort", "s", "default", "Sort: default, priority, due or assignee")
}
