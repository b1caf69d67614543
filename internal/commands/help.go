package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for sratask",
	Long:  `Display detailed help for all sratask commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██████╗  █████╗ ████████╗ █████╗ ███████╗██╗  ██╗
██╔════╝██╔══██╗██╔══██╗╚══██╔══╝██╔══██╗██╔════╝██║ ██╔╝
███████╗██████╔╝███████║   ██║   ███████║███████╗█████╔╝
╚════██║██╔══██╗██╔══██║   ██║   ██╔══██║╚════██║██╔═██╗
███████║██║  ██║██║  ██║   ██║   ██║  ██║███████║██║  ██╗
╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝

sratask - Task board for an accounting practice

VIEWS:

  board                   Kanban columns for one client or project
    -c, --client          Show this client
    -p, --project         Show this project (switches to project view)
    -s, --sort            default|priority|due|assignee
    --json                JSON output

  dashboard               Counts per status, high priority, long pending
    --stat                List the tasks behind one card

  gantt                   Timeline of the selected client or project
  ls                      Tasks across every client
    --status, --client, --assignee, --engagement, --open, --blocked
  week                    What runs and falls due this week (--offset N)
  ui                      Interactive board (same views, keyboard driven)
                          board.reduce_motion in the config stops the animation

TASKS:

  add <title>             Create a task in To Do
    -p, --project         Project (sets the client too)
    --priority            low|medium|high|urgent or 1-4
    --start, --due        yyyy-mm-dd, dd/mm/yyyy, today, +5d, 2w
    --after               Prerequisite task in the same project
    --subtask             Checklist item (repeatable)
    -t, --template        onboarding|payroll|vat

    Smart syntax:
      #engagement   audit, tax, advisory, bookkeeping
      @project      Project name or slug
      +priority     low/medium/high/urgent
      due:+5d       Due date, start:today for the start date
      after:<id>    Prerequisite task

    Example:
      sratask add "Q3 VAT return #tax @acme-vat +urgent due:+5d"

  edit <id>               Change fields, payments or the prerequisite
  show <id>               Every detail of a task
  move <id> <status>      todo|in-progress|in-review|pending-client|done
  done <id>               Move to Done
  subtask add|toggle      Manage the checklist
  comment <id> <text>     Leave a comment

  Tasks waiting on an unfinished prerequisite are blocked: they cannot be
  moved, edited or commented on until the prerequisite is Done.

AI ASSISTANT:

  suggest <id>            Propose subtasks and a title (--apply to keep them)
  search <query>          Find tasks with a plain-language question
  sql format              Pretty-print a SQL query

  Set GEMINI_API_KEY or ai.api_key in the config file to enable it.

CATALOG & SETTINGS:

  client add|ls           Clients
  project add|ls          Projects, each owned by one client
  assignee add|ls         Team members
  template                Built-in task templates
  settings                --long-pending-days N
  sql schema|run          Inspect the database read-only
  config init|show        Configuration file

  serve                   JSON API under /api (--addr)
  version                 Version information

`)
}
