package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/config"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "List the built-in task templates",
	Long: `List the built-in task templates. Use one with:
  sratask add --template vat --project acme-vat`,
	Aliases: []string{"templates"},
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if err := printJSON(models.BuiltinTemplates()); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		for _, tmpl := range models.BuiltinTemplates() {
			fmt.Printf("%-12s %s (%s)\n", tmpl.ID, tmpl.Name, tmpl.EngagementType)
			for _, st := range tmpl.Subtasks {
				fmt.Printf("               - %s\n", st)
			}
		}
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change board settings",
	Long: `Show or change the settings stored with the board.

Example:
  sratask settings --long-pending-days 14`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		if cmd.Flags().Changed("long-pending-days") {
			days, _ := cmd.Flags().GetInt("long-pending-days")
			if err := a.session.SetLongPendingDays(cmd.Context(), days); err != nil {
				return err
			}
		}

		s := a.session.State()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(map[string]any{"long_pending_days": s.LongPendingDays})
		}
		fmt.Printf("Long pending after: %d days\n", s.LongPendingDays)
		return nil
	}),
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.AI.APIKey != "" {
			cfg.AI.APIKey = "********"
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	},
}

func init() {
	templateCmd.Flags().Bool("json", false, "Output as JSON")

	settingsCmd.Flags().Int("long-pending-days", models.DefaultLongPendingDays, "Days past due before a Pending Client task counts as long pending")
	settingsCmd.Flags().Bool("json", false, "Output as JSON")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
