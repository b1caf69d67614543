package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
)

var doneCmd = &cobra.Command{
	Use:   "done <task_id>",
	Short: "Mark a task as Done",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return moveTask(cmd, a, args[0], models.StatusDone)
	}),
}

var moveCmd = &cobra.Command{
	Use:   "move <task_id> <status>",
	Short: "Move a task to another column",
	Long: `Move a task to another status column.

Statuses: todo, in-progress, in-review, pending-client, done

Example:
  sratask move 3f2a pending-client`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		status, err := parser.ParseStatus(args[1])
		if err != nil {
			return err
		}
		return moveTask(cmd, a, args[0], status)
	}),
}

func moveTask(cmd *cobra.Command, a *app, ref string, status models.Status) error {
	id, err := resolveTaskID(a.session.State().Snapshot, ref)
	if err != nil {
		return err
	}
	res := a.session.MoveTask(cmd.Context(), id, status)
	icon := "➡️ "
	if status == models.StatusDone {
		icon = "✅"
	}
	return reportUpdate(res, fmt.Sprintf("%s Moved task %s to %s: %s", icon, shortID(id), status, res.Task.Title))
}
