package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task in To Do with optional metadata.

Modes:
  Interactive: sratask add -i (or just 'sratask add' with no arguments)
  Quick: sratask add "Task title" --client Acme --due 3d
  Smart parsing: sratask add "Q3 VAT return #tax @acme-vat +urgent due:+5d"
  Template: sratask add --template vat --project acme-vat

Smart parsing syntax:
  #engagement   - audit, tax, advisory or bookkeeping
  @project      - Project name or id (sets the client too)
  +priority     - low/medium/high/urgent or 1-4
  start:today   - Start date (yyyy-mm-dd, dd/mm/yyyy, today, +5d, 2w)
  due:+5d       - Due date, same formats
  after:<id>    - Prerequisite task in the same project`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		templateRef, _ := cmd.Flags().GetString("template")

		// No title and no template means interactive
		if len(args) == 0 && templateRef == "" {
			interactive = true
		}

		today := a.session.Today()
		parsed := parser.ParseTitle(strings.Join(args, " "), today)

		if interactive || len(parsed.Errors) > 0 {
			if len(parsed.Errors) > 0 {
				fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(parsed.Errors, ", "))
				fmt.Println("Opening interactive mode for confirmation...")
			}
			return tui.RunAddTaskTUI(a.session, prefillFromParsed(cmd, parsed))
		}

		in, err := buildNewTask(cmd, a.session.State().Snapshot, parsed, today)
		if err != nil {
			return err
		}
		task, err := a.session.CreateTask(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("error creating task: %w", err)
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(task)
		}
		printCreated(task, today)
		return nil
	}),
}

// buildNewTask merges template, parsed title and flags, flags taking precedence
func buildNewTask(cmd *cobra.Command, snap models.Snapshot, parsed parser.ParsedTask, today models.Date) (state.NewTask, error) {
	in := state.NewTask{
		Title:          parsed.Title,
		Priority:       parsed.Priority,
		EngagementType: parsed.EngagementType,
		StartDate:      parsed.StartDate,
		DueDate:        parsed.DueDate,
		DependsOn:      parsed.DependsOn,
	}
	projectRef := parsed.Project

	if ref, _ := cmd.Flags().GetString("template"); ref != "" {
		tmpl, ok := models.FindTemplate(ref)
		if !ok {
			return in, fmt.Errorf("template not found: %s (see 'sratask template ls')", ref)
		}
		if in.Title == "" {
			in.Title = tmpl.Title
		}
		in.Description = tmpl.Description
		if in.EngagementType == "" {
			in.EngagementType = tmpl.EngagementType
		}
		in.Subtasks = append(in.Subtasks, tmpl.Subtasks...)
	}

	if v, _ := cmd.Flags().GetString("description"); v != "" {
		in.Description = v
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		p, err := parser.ParsePriority(v)
		if err != nil {
			return in, err
		}
		in.Priority = p
	}
	if v, _ := cmd.Flags().GetString("engagement"); v != "" {
		e, err := parser.ParseEngagementType(v)
		if err != nil {
			return in, err
		}
		in.EngagementType = e
	}
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		d, err := parser.ParseDate(v, today)
		if err != nil {
			return in, fmt.Errorf("error parsing start date: %w", err)
		}
		in.StartDate = d
	}
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		d, err := parser.ParseDate(v, today)
		if err != nil {
			return in, fmt.Errorf("error parsing due date: %w", err)
		}
		in.DueDate = d
	}
	if v, _ := cmd.Flags().GetString("assignee"); v != "" {
		in.Assignee = resolveAssignee(snap, v)
	}
	if v, _ := cmd.Flags().GetStringArray("subtask"); len(v) > 0 {
		in.Subtasks = append(in.Subtasks, v...)
	}
	if v, _ := cmd.Flags().GetFloat64("fee"); v > 0 {
		in.TotalFee = v
	}

	if v, _ := cmd.Flags().GetString("project"); v != "" {
		projectRef = v
	}
	if projectRef != "" {
		p, err := resolveProject(snap, projectRef)
		if err != nil {
			return in, err
		}
		in.ProjectID = p.ID
	}
	if v, _ := cmd.Flags().GetString("client"); v != "" {
		c, err := resolveClient(snap, v)
		if err != nil {
			return in, err
		}
		in.ClientID = c.ID
	}

	if v, _ := cmd.Flags().GetString("after"); v != "" {
		in.DependsOn = v
	}
	if in.DependsOn != "" {
		id, err := resolveTaskID(snap, in.DependsOn)
		if err != nil {
			return in, fmt.Errorf("prerequisite: %w", err)
		}
		in.DependsOn = id
	}
	return in, nil
}

// prefillFromParsed collects parsed values and flags for the interactive form
func prefillFromParsed(cmd *cobra.Command, parsed parser.ParsedTask) map[string]string {
	prefilled := make(map[string]string)
	if parsed.Title != "" {
		prefilled["title"] = parsed.Title
	}
	if parsed.Project != "" {
		prefilled["project"] = parsed.Project
	}
	if parsed.Priority != "" {
		prefilled["priority"] = string(parsed.Priority)
	}
	if parsed.EngagementType != "" {
		prefilled["engagement"] = string(parsed.EngagementType)
	}
	if !parsed.StartDate.IsZero() {
		prefilled["start"] = parsed.StartDate.Format("02/01/2006")
	}
	if !parsed.DueDate.IsZero() {
		prefilled["due"] = parsed.DueDate.Format("02/01/2006")
	}

	// Explicit flags win over parsed values
	for _, name := range []string{"project", "priority", "engagement", "start", "due", "assignee", "description"} {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			prefilled[name] = v
		}
	}
	return prefilled
}

func printCreated(task models.Task, today models.Date) {
	fmt.Printf("Created task %s: %s\n", shortID(task.ID), task.Title)
	fmt.Printf("  Priority: %s\n", task.Priority)
	if task.EngagementType != "" {
		fmt.Printf("  Engagement: %s\n", task.EngagementType)
	}
	if task.Assignee.Name != "" {
		fmt.Printf("  Assignee: %s\n", task.Assignee.Name)
	}
	if !task.DueDate.IsZero() {
		fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.DueDate, today))
	}
	if len(task.Subtasks) > 0 {
		fmt.Printf("  Subtasks: %d\n", len(task.Subtasks))
	}
	if task.DependsOn != "" {
		fmt.Printf("  After: %s\n", shortID(task.DependsOn))
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().StringP("client", "c", "", "Client name or id")
	addCmd.Flags().StringP("project", "p", "", "Project name or id")
	addCmd.Flags().String("priority", "", "Priority: low, medium, high, urgent or 1-4")
	addCmd.Flags().String("engagement", "", "Engagement: audit, tax, advisory or bookkeeping")
	addCmd.Flags().String("start", "", "Start date: yyyy-mm-dd, dd/mm/yyyy, today, X days, X weeks")
	addCmd.Flags().String("due", "", "Due date: yyyy-mm-dd, dd/mm/yyyy, today, X days, X weeks")
	addCmd.Flags().StringP("assignee", "a", "", "Assignee name")
	addCmd.Flags().StringP("description", "d", "", "Description")
	addCmd.Flags().String("after", "", "Prerequisite task id (same project)")
	addCmd.Flags().StringArray("subtask", nil, "Subtask text (repeatable)")
	addCmd.Flags().Float64("fee", 0, "Agreed fee")
	addCmd.Flags().StringP("template", "t", "", "Start from a template (onboarding, payroll, vat)")
	addCmd.Flags().Bool("json", false, "Output as JSON")
}
