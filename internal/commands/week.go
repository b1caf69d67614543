package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show what runs and falls due this week",
	Long: `Show every open task that runs during a calendar week, one row per task.

Example output:
  Task                        Mon  Tue  Wed  Thu  Fri  Sat  Sun
  Collect statements           ==   DD    .    .    .    .    .
  Quarterly VAT return          .    .   <>    .    .    .    .
  Due                           0    1    1    0    0    0    0

  << start   == in progress   DD due   <> starts and due the same day`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		offset, _ := cmd.Flags().GetInt("offset")
		s := a.session.State()
		tasks := state.Enriched(s)
		if assignee, _ := cmd.Flags().GetString("assignee"); assignee != "" {
			var mine []board.TaskWithDetails
			for _, t := range tasks {
				if strings.EqualFold(t.Assignee.Name, assignee) {
					mine = append(mine, t)
				}
			}
			tasks = mine
		}

		plan := board.BuildWeekPlan(tasks, a.session.Today().AddDays(7*offset))
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(plan)
		}
		displayWeekPlan(plan)
		return nil
	}),
}

var weekMarks = map[board.WeekMark]string{
	board.MarkNone:   ".",
	board.MarkStart:  "<<",
	board.MarkActive: "==",
	board.MarkDue:    "DD",
	board.MarkSingle: "<>",
}

// displayWeekPlan outputs the week plan table
func displayWeekPlan(plan board.WeekPlan) {
	fmt.Printf("Week of %s\n\n", plan.Start.Format("Mon 02/01/2006"))
	if len(plan.Rows) == 0 {
		fmt.Println("No open tasks this week.")
		return
	}

	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dayColumnWidth := 5

	maxTaskNameWidth := 20
	for _, row := range plan.Rows {
		maxTaskNameWidth = max(maxTaskNameWidth, len([]rune(row.Task.Title)))
	}
	maxTaskNameWidth = min(maxTaskNameWidth, 40)

	fmt.Printf("%-*s", maxTaskNameWidth, "Task")
	for _, name := range dayNames {
		fmt.Printf("%*s", dayColumnWidth, name)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxTaskNameWidth+dayColumnWidth*len(dayNames)))

	for _, row := range plan.Rows {
		fmt.Printf("%-*s", maxTaskNameWidth, truncate(row.Task.Title, maxTaskNameWidth))
		for _, mark := range row.Days {
			fmt.Printf("%*s", dayColumnWidth, weekMarks[mark])
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", maxTaskNameWidth+dayColumnWidth*len(dayNames)))
	fmt.Printf("%-*s", maxTaskNameWidth, "Due")
	for _, n := range plan.DueCounts {
		fmt.Printf("%*d", dayColumnWidth, n)
	}
	fmt.Println()
}

func init() {
	weekCmd.Flags().Int("offset", 0, "Weeks from now (-1 last week, 1 next week)")
	weekCmd.Flags().StringP("assignee", "a", "", "Only tasks of this assignee")
	weekCmd.Flags().Bool("json", false, "Output as JSON")
}
