package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show task counts across all clients",
	Long: `Show one card per status plus High Priority and Long Pending counts,
computed over every task regardless of the board filter.

Long Pending counts tasks in Pending Client whose due date passed more than
the configured number of days ago (see 'sratask settings').

Use --stat to list the tasks behind a card:
  sratask dashboard --stat long-pending
  sratask dashboard --stat "in review"`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		today := a.session.Today()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if statFlag, _ := cmd.Flags().GetString("stat"); statFlag != "" {
			stat, err := parser.ParseStat(statFlag)
			if err != nil {
				return err
			}
			s := a.session.Dispatch(state.StatSelected{Stat: stat})
			tasks := state.StatTasks(s, today)
			if jsonOutput {
				return printJSON(map[string]any{"stat": stat, "count": len(tasks), "tasks": tasks})
			}
			fmt.Printf("%s (%d):\n\n", stat, len(tasks))
			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}
			renderTaskTable(tasks, s.Snapshot.Tasks, today)
			return nil
		}

		d := state.Dashboard(a.session.State(), today)
		if jsonOutput {
			return printJSON(d)
		}

		fmt.Printf("Dashboard (%s)\n", today.Format("02/01/2006"))
		fmt.Println(strings.Repeat("-", 30))
		for _, card := range d.Cards {
			fmt.Printf("%-16s %6d\n", card.Stat, card.Count)
		}
		fmt.Printf("\nLong pending threshold: %d days\n", d.LongPendingDays)
		return nil
	}),
}

func init() {
	dashboardCmd.Flags().String("stat", "", "List the tasks behind a card (status, high-priority, long-pending)")
	dashboardCmd.Flags().Bool("json", false, "Output as JSON")
}
