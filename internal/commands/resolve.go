package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
)

// resolveTaskID accepts a full task id or a unique prefix of one
func resolveTaskID(snap models.Snapshot, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("task id is required")
	}
	var matches []string
	for _, t := range snap.Tasks {
		if t.ID == ref {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// resolveClient finds a client by id or case-insensitive name
func resolveClient(snap models.Snapshot, ref string) (models.Client, error) {
	for _, c := range snap.Clients {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return models.Client{}, fmt.Errorf("client not found: %s", ref)
}

// resolveProject finds a project by id, case-insensitive name or slug
// ("Acme VAT" matches acme-vat)
func resolveProject(snap models.Snapshot, ref string) (models.Project, error) {
	for _, p := range snap.Projects {
		if p.ID == ref || strings.EqualFold(p.Name, ref) || slug(p.Name) == slug(ref) {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project not found: %s", ref)
}

// resolveAssignee finds a known assignee by name. Unknown names are accepted
// as-is so work can be given to someone not yet on the team list.
func resolveAssignee(snap models.Snapshot, name string) models.Assignee {
	for _, a := range snap.Assignees {
		if strings.EqualFold(a.Name, name) {
			return a
		}
	}
	return models.Assignee{Name: name}
}

func slug(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "-")
}

// shortID is the task id prefix shown in tables
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// defaultAuthor names the person leaving comments from this shell
func defaultAuthor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "me"
}
