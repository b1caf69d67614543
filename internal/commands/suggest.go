package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <task_id>",
	Short: "Ask the AI assistant for subtasks and a better title",
	Long: `Ask the AI assistant for a checklist for a task. When the task has a
description the assistant also proposes a concise title.

Nothing changes unless you pass --apply. Applying keeps existing subtasks and
only adds suggestions that are not on the task yet.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		id, err := resolveTaskID(a.session.State().Snapshot, args[0])
		if err != nil {
			return err
		}

		fmt.Println("Asking the assistant...")
		sg, err := a.session.Suggest(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s", a.session.UserMessage(err))
		}

		apply, _ := cmd.Flags().GetBool("apply")
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput && !apply {
			return printJSON(sg)
		}

		if sg.Title != "" {
			fmt.Printf("Suggested title: %s\n", sg.Title)
		}
		fmt.Printf("Suggested subtasks (%d):\n", len(sg.Subtasks))
		for i, st := range sg.Subtasks {
			fmt.Printf("  %d. %s\n", i+1, st)
		}

		if !apply {
			fmt.Printf("\nRun 'sratask suggest %s --apply' to add them.\n", shortID(id))
			return nil
		}
		if keep, _ := cmd.Flags().GetBool("keep-title"); keep {
			sg.Title = ""
		}
		res := a.session.ApplySuggestion(cmd.Context(), sg)
		return reportUpdate(res, fmt.Sprintf("Applied suggestions to %s", shortID(id)))
	}),
}

func init() {
	suggestCmd.Flags().Bool("apply", false, "Apply the suggestions to the task")
	suggestCmd.Flags().Bool("keep-title", false, "Only add subtasks, keep the current title")
	suggestCmd.Flags().Bool("json", false, "Output as JSON")
}
