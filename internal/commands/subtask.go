package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage the checklist of a task",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <task_id> <text>",
	Short: "Add a checklist item",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		id, err := resolveTaskID(a.session.State().Snapshot, args[0])
		if err != nil {
			return err
		}
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return fmt.Errorf("subtask text is required")
		}
		res := a.session.EditTask(cmd.Context(), id, func(t *models.Task) {
			t.Subtasks = append(t.Subtasks, models.Subtask{ID: uuid.NewString(), Text: text})
		})
		return reportUpdate(res, fmt.Sprintf("Added subtask to %s: %s", shortID(id), text))
	}),
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle <task_id> <subtask_id|number>",
	Short: "Tick or untick a checklist item",
	Long: `Tick or untick a checklist item. The item can be given by id prefix or by
its 1-based position as shown by 'sratask show'.`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s := a.session.State()
		id, err := resolveTaskID(s.Snapshot, args[0])
		if err != nil {
			return err
		}
		task, _ := s.FindTask(id)
		subtaskID, err := resolveSubtask(task, args[1])
		if err != nil {
			return err
		}

		res := a.session.ToggleSubtask(cmd.Context(), id, subtaskID)
		if res.Err != nil {
			return res.Err
		}
		done, total := res.Task.SubtaskProgress()
		fmt.Printf("Subtasks of %s: %d/%d done\n", shortID(id), done, total)
		return nil
	}),
}

func resolveSubtask(task models.Task, ref string) (string, error) {
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err == nil && fmt.Sprint(n) == ref {
		if n < 1 || n > len(task.Subtasks) {
			return "", fmt.Errorf("task has %d subtasks, no number %d", len(task.Subtasks), n)
		}
		return task.Subtasks[n-1].ID, nil
	}
	for _, st := range task.Subtasks {
		if strings.HasPrefix(st.ID, ref) {
			return st.ID, nil
		}
	}
	return "", fmt.Errorf("subtask not found: %s", ref)
}

var commentCmd = &cobra.Command{
	Use:   "comment <task_id> <text>",
	Short: "Leave a comment on a task",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		s := a.session.State()
		id, err := resolveTaskID(s.Snapshot, args[0])
		if err != nil {
			return err
		}
		author, _ := cmd.Flags().GetString("as")
		res := a.session.AddComment(cmd.Context(), id, resolveAssignee(s.Snapshot, author), strings.Join(args[1:], " "))
		return reportUpdate(res, fmt.Sprintf("Comment added to %s", shortID(id)))
	}),
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)

	commentCmd.Flags().String("as", defaultAuthor(), "Comment author")
}
