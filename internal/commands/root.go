package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/ai"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/config"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/db"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "sratask",
	Short: "Task board for an accounting practice",
	Long: `sratask tracks client work for an accounting practice on a kanban board.
Filter the board by client or project, watch due dates and long pending items
on the dashboard, plan with the Gantt view and let the AI assistant suggest
subtasks or find tasks from a plain-language query.`,
	SilenceUsage: true,
}

// app bundles everything a command needs once config and database are open
type app struct {
	cfg     *config.Config
	store   *db.Store
	session *state.Session
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
	}
}

// openApp loads config, opens the database and loads the board
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	store, err := db.Open(cfg.Database.Path, cfg.Database.LogLevel)
	if err != nil {
		return nil, err
	}

	assistant := ai.NewClient(cfg.AI.APIKey,
		ai.WithBaseURL(cfg.AI.BaseURL),
		ai.WithModel(cfg.AI.Model),
		ai.WithTimeout(time.Duration(cfg.AI.TimeoutSeconds)*time.Second),
	)
	session := state.NewSession(store, state.Options{
		View: board.View{
			Mode:   board.ViewMode(cfg.Board.ViewMode),
			SortBy: board.SortBy(cfg.Board.SortBy),
		},
		LongPendingDays: cfg.Board.LongPendingDays,
		Searcher:        assistant,
		Suggester:       assistant,
		Formatter:       assistant,
		UserMessage:     ai.UserMessage,
	})
	if err := session.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return &app{cfg: cfg, store: store, session: session}, nil
}

// withApp wraps a command function to open the app first and report errors
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := openApp(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()

		if err := fn(cmd, args, a); err != nil {
			fmt.Printf("Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sratask %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.sratask/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(ganttCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(subtaskCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(assigneeCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
