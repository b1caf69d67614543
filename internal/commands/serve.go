package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/tui"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board as a JSON API",
	Long: `Serve the board over HTTP. All routes live under /api, for example:

  GET  /api/board?mode=project&sort=due
  GET  /api/dashboard?stat=long-pending
  POST /api/tasks
  POST /api/tasks/<id>/move     {"status": "In Review"}
  POST /api/search              {"query": "overdue tax work"}`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.cfg.Server.Addr
		}
		log.Printf("sratask %s listening on %s", version, addr)
		return web.NewServer(a.session, a.store).Run(addr)
	}),
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive board",
	Long: `Open the kanban board in the terminal.

Keys:
  ←/→ ↑/↓     Move between columns and cards
  [ ]         Move the selected card to the previous or next status
  v f s       Cycle view mode, filter and sort
  b d g       Board, dashboard and Gantt views
  /           Ask the AI assistant to find tasks
  q           Quit`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		return tui.RunBoard(a.session, tui.Options{ReduceMotion: a.cfg.Board.ReduceMotion})
	}),
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, 127.0.0.1:8080)")
}
