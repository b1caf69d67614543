package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// ganttLabelWidth is the width of the task title column
const ganttLabelWidth = 28

var ganttCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Show a timeline of the selected client or project",
	Long: `Draw each displayed task as a bar from its start date to its due date.
Prerequisites are listed under the task that waits on them.`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s, err := applyViewFlags(cmd, a.session)
		if err != nil {
			return err
		}
		g := state.Gantt(s)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(g)
		}
		renderGantt(s, g)
		return nil
	}),
}

func renderGantt(s state.State, g board.Gantt) {
	fmt.Printf("Timeline for %s %s\n", s.View.Mode, filterName(s))
	if g.TotalDays == 0 {
		fmt.Println("No dated tasks to show.")
		return
	}
	fmt.Printf("%s .. %s (%d days)\n\n", g.Start.Format("02/01/2006"), g.End.Format("02/01/2006"), g.TotalDays)

	// Day-of-month ruler, one character per day
	var ruler strings.Builder
	for _, d := range g.Days() {
		if d.Time().Day() == 1 || d.Time().Weekday() == 1 {
			ruler.WriteString("|")
		} else {
			ruler.WriteString(" ")
		}
	}
	fmt.Printf("%-*s %s\n", ganttLabelWidth, "", ruler.String())

	titles := make(map[string]string, len(g.Rows))
	for _, row := range g.Rows {
		titles[row.Task.ID] = row.Task.Title
	}

	for _, row := range g.Rows {
		bar := "="
		if row.Task.Status == models.StatusDone {
			bar = "#"
		}
		if row.Task.StartDate.IsZero() && row.Task.DueDate.IsZero() {
			fmt.Printf("%-*s (no dates)\n", ganttLabelWidth, truncate(row.Task.Title, ganttLabelWidth))
			continue
		}
		fmt.Printf("%-*s %s%s\n",
			ganttLabelWidth,
			truncate(row.Task.Title, ganttLabelWidth),
			strings.Repeat(" ", row.Offset),
			strings.Repeat(bar, row.Span))
	}

	if len(g.Links) > 0 {
		fmt.Println("\nDependencies:")
		for _, l := range g.Links {
			fmt.Printf("  %s -> %s\n", truncate(titles[l.FromID], 30), truncate(titles[l.ToID], 30))
		}
	}
}

func init() {
	addViewFlags(ganttCmd)
}
