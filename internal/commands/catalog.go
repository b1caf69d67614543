package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a client",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		name := strings.Join(args, " ")
		if _, err := resolveClient(a.session.State().Snapshot, name); err == nil {
			return fmt.Errorf("client %q already exists", name)
		}
		c, err := a.store.CreateClient(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("Created client %s (%s)\n", c.Name, shortID(c.ID))
		return nil
	}),
}

var clientListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List clients with their open task counts",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		snap := a.session.State().Snapshot
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(snap.Clients)
		}
		if len(snap.Clients) == 0 {
			fmt.Println("No clients yet. Add one with 'sratask client add <name>'.")
			return nil
		}
		fmt.Printf("%-8s %-30s %8s %6s\n", "ID", "NAME", "PROJECTS", "OPEN")
		fmt.Println(strings.Repeat("-", 56))
		for _, c := range snap.Clients {
			projects := 0
			for _, p := range snap.Projects {
				if p.ClientID == c.ID {
					projects++
				}
			}
			fmt.Printf("%-8s %-30s %8d %6d\n", shortID(c.ID), truncate(c.Name, 30), projects, openTasks(snap, func(t models.Task) bool {
				return t.ClientID == c.ID
			}))
		}
		return nil
	}),
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project for a client",
	Long: `Add a project for a client. Every project belongs to exactly one client.

Example:
  sratask project add "Acme VAT" --client Acme`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		clientRef, _ := cmd.Flags().GetString("client")
		if clientRef == "" {
			return fmt.Errorf("--client is required")
		}
		c, err := resolveClient(a.session.State().Snapshot, clientRef)
		if err != nil {
			return err
		}
		p, err := a.store.CreateProject(cmd.Context(), strings.Join(args, " "), c.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Created project %s for %s (@%s)\n", p.Name, c.Name, slug(p.Name))
		return nil
	}),
}

var projectListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		snap := a.session.State().Snapshot
		clientRef, _ := cmd.Flags().GetString("client")
		projects := snap.Projects
		if clientRef != "" {
			c, err := resolveClient(snap, clientRef)
			if err != nil {
				return err
			}
			projects = nil
			for _, p := range snap.Projects {
				if p.ClientID == c.ID {
					projects = append(projects, p)
				}
			}
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			if projects == nil {
				projects = []models.Project{}
			}
			return printJSON(projects)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		clientNames := make(map[string]string, len(snap.Clients))
		for _, c := range snap.Clients {
			clientNames[c.ID] = c.Name
		}
		fmt.Printf("%-8s %-26s %-20s %6s\n", "ID", "NAME", "CLIENT", "OPEN")
		fmt.Println(strings.Repeat("-", 64))
		for _, p := range projects {
			fmt.Printf("%-8s %-26s %-20s %6d\n", shortID(p.ID), truncate(p.Name, 26), truncate(clientNames[p.ClientID], 20),
				openTasks(snap, func(t models.Task) bool { return t.ProjectID == p.ID }))
		}
		return nil
	}),
}

var assigneeCmd = &cobra.Command{
	Use:   "assignee",
	Short: "Manage the team members tasks can be given to",
}

var assigneeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team member or update their avatar",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		avatar, _ := cmd.Flags().GetString("avatar")
		saved, err := a.store.SaveAssignee(cmd.Context(), models.Assignee{Name: strings.Join(args, " "), AvatarURL: avatar})
		if err != nil {
			return err
		}
		fmt.Printf("Saved assignee %s\n", saved.Name)
		return nil
	}),
}

var assigneeListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List team members with their open task counts",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		snap := a.session.State().Snapshot
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(snap.Assignees)
		}
		if len(snap.Assignees) == 0 {
			fmt.Println("No assignees yet. Add one with 'sratask assignee add <name>'.")
			return nil
		}
		for _, as := range snap.Assignees {
			fmt.Printf("%-24s %3d open\n", as.Name, openTasks(snap, func(t models.Task) bool {
				return strings.EqualFold(t.Assignee.Name, as.Name)
			}))
		}
		return nil
	}),
}

func openTasks(snap models.Snapshot, match func(models.Task) bool) int {
	n := 0
	for _, t := range snap.Tasks {
		if t.Status != models.StatusDone && match(t) {
			n++
		}
	}
	return n
}

func init() {
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientListCmd.Flags().Bool("json", false, "Output as JSON")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectAddCmd.Flags().StringP("client", "c", "", "Client name or id")
	projectListCmd.Flags().StringP("client", "c", "", "Only projects of this client")
	projectListCmd.Flags().Bool("json", false, "Output as JSON")

	assigneeCmd.AddCommand(assigneeAddCmd)
	assigneeCmd.AddCommand(assigneeListCmd)
	assigneeAddCmd.Flags().String("avatar", "", "Avatar image URL")
	assigneeListCmd.Flags().Bool("json", false, "Output as JSON")
}
