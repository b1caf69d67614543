package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var editCmd = &cobra.Command{
	Use:   "edit <task_id>",
	Short: "Edit an existing task",
	Long: `Edit fields of an existing task. Only the flags you pass are changed.

Tasks waiting on an unfinished prerequisite cannot be edited until that
prerequisite is Done.

Examples:
  sratask edit 3f2a --status review --assignee Dana
  sratask edit 3f2a --due 30/09/2025 --priority urgent
  sratask edit 3f2a --after 9c01       - Wait for task 9c01 first
  sratask edit 3f2a --after ""         - Remove the prerequisite
  sratask edit 3f2a --received 500 --received-by Dana`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s := a.session.State()
		id, err := resolveTaskID(s.Snapshot, args[0])
		if err != nil {
			return err
		}

		edit, err := collectEdits(cmd, s.Snapshot, a.session.Today())
		if err != nil {
			return err
		}
		if edit == nil {
			task, _ := s.FindTask(id)
			fmt.Println("Nothing to change. Dependency candidates for this task:")
			for _, c := range board.DependencyCandidates(task, s.Snapshot.Tasks) {
				fmt.Printf("  %s  %s\n", shortID(c.ID), c.Title)
			}
			return nil
		}

		res := a.session.EditTask(cmd.Context(), id, edit)
		return reportUpdate(res, fmt.Sprintf("Updated task %s: %s", shortID(res.Task.ID), res.Task.Title))
	}),
}

// collectEdits turns the changed flags into one edit function, nil when no
// flag was given
func collectEdits(cmd *cobra.Command, snap models.Snapshot, today models.Date) (func(*models.Task), error) {
	var edits []func(*models.Task)
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		edits = append(edits, func(t *models.Task) { t.Title = v })
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		edits = append(edits, func(t *models.Task) { t.Description = v })
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		status, err := parser.ParseStatus(v)
		if err != nil {
			return nil, err
		}
		edits = append(edits, func(t *models.Task) { t.Status = status })
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		p, err := parser.ParsePriority(v)
		if err != nil {
			return nil, err
		}
		edits = append(edits, func(t *models.Task) { t.Priority = p })
	}
	if flags.Changed("engagement") {
		v, _ := flags.GetString("engagement")
		e, err := parser.ParseEngagementType(v)
		if err != nil {
			return nil, err
		}
		edits = append(edits, func(t *models.Task) { t.EngagementType = e })
	}
	for _, name := range []string{"start", "due"} {
		if !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetString(name)
		d, err := parser.ParseDate(v, today)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s date: %w", name, err)
		}
		if name == "start" {
			edits = append(edits, func(t *models.Task) { t.StartDate = d })
		} else {
			edits = append(edits, func(t *models.Task) { t.DueDate = d })
		}
	}
	if flags.Changed("assignee") {
		v, _ := flags.GetString("assignee")
		assignee := models.Assignee{}
		if v != "" {
			assignee = resolveAssignee(snap, v)
		}
		edits = append(edits, func(t *models.Task) { t.Assignee = assignee })
	}
	if flags.Changed("after") {
		v, _ := flags.GetString("after")
		dependsOn := ""
		if v != "" {
			id, err := resolveTaskID(snap, v)
			if err != nil {
				return nil, fmt.Errorf("prerequisite: %w", err)
			}
			dependsOn = id
		}
		edits = append(edits, func(t *models.Task) { t.DependsOn = dependsOn })
	}

	financial, err := financialEdits(cmd, today)
	if err != nil {
		return nil, err
	}
	edits = append(edits, financial...)

	if len(edits) == 0 {
		return nil, nil
	}
	return func(t *models.Task) {
		for _, e := range edits {
			e(t)
		}
	}, nil
}

func financialEdits(cmd *cobra.Command, today models.Date) ([]func(*models.Task), error) {
	var edits []func(*models.Task)
	flags := cmd.Flags()

	ensure := func(t *models.Task) *models.Financials {
		if t.Financials == nil {
			t.Financials = &models.Financials{}
		}
		return t.Financials
	}

	if flags.Changed("fee") {
		v, _ := flags.GetFloat64("fee")
		edits = append(edits, func(t *models.Task) { ensure(t).TotalFee = v })
	}
	if flags.Changed("received") {
		v, _ := flags.GetFloat64("received")
		by, _ := flags.GetString("received-by")
		edits = append(edits, func(t *models.Task) {
			f := ensure(t)
			f.AmountReceived = v
			f.ReceivedBy = by
			f.ReceivedDate = today
		})
	}
	if flags.Changed("balance-received") {
		by, _ := flags.GetString("received-by")
		edits = append(edits, func(t *models.Task) {
			f := ensure(t)
			f.AmountReceived = f.TotalFee
			f.BalanceReceivedBy = by
			f.BalanceReceivedDate = today
		})
	}
	return edits, nil
}

var showCmd = &cobra.Command{
	Use:   "show <task_id>",
	Short: "Show every detail of a task",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s := a.session.State()
		id, err := resolveTaskID(s.Snapshot, args[0])
		if err != nil {
			return err
		}
		var task board.TaskWithDetails
		for _, t := range state.Enriched(s) {
			if t.ID == id {
				task = t
			}
		}
		dep := state.Dependency(s, task.Task)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(map[string]any{
				"task":       task,
				"dependency": dep,
				"urgency":    board.DueDateUrgency(task.DueDate, a.session.Today()),
			})
		}
		printTaskDetails(task, dep, a.session.Today())
		return nil
	}),
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("status", "s", "", "Status: todo, in-progress, in-review, pending-client, done")
	editCmd.Flags().String("priority", "", "Priority: low, medium, high, urgent or 1-4")
	editCmd.Flags().String("engagement", "", "Engagement: audit, tax, advisory or bookkeeping")
	editCmd.Flags().String("start", "", "Start date (empty clears)")
	editCmd.Flags().String("due", "", "Due date (empty clears)")
	editCmd.Flags().StringP("assignee", "a", "", "Assignee name (empty clears)")
	editCmd.Flags().String("after", "", "Prerequisite task id (empty clears)")
	editCmd.Flags().Float64("fee", 0, "Agreed fee")
	editCmd.Flags().Float64("received", 0, "Amount received so far")
	editCmd.Flags().Bool("balance-received", false, "Mark the remaining balance as received")
	editCmd.Flags().String("received-by", "", "Who took the payment")

	showCmd.Flags().Bool("json", false, "Output as JSON")
}
