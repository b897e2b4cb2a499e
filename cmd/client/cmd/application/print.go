package application

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"jobtracker/internal/app/client"
)

var statuses = []string{"applied", "interviewing", "offer", "accepted", "rejected"}

var badgeColors = map[string]*color.Color{
	"applied":      color.New(color.FgHiBlack),
	"interviewing": color.New(color.FgYellow),
	"offer":        color.New(color.FgMagenta),
	"accepted":     color.New(color.FgGreen),
	"rejected":     color.New(color.FgRed),
}

// badge renders a status the way the dashboard colors it. Unknown statuses
// are printed as is.
func badge(status string) string {
	c, ok := badgeColors[status]
	if !ok {
		return status
	}
	return c.Sprint(status)
}

func printDashboardTable(w io.Writer, d client.Dashboard) error {
	printCounts(w, d)

	if len(d.Applications) == 0 {
		fmt.Fprintln(w, "No applications found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tSTATUS\tAPPLIED\t")
	for _, a := range d.Applications {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			a.ID,
			truncate(a.CompanyName, 30),
			truncate(a.JobTitle, 30),
			badge(a.Status),
			a.AppliedDate,
		)
	}
	return tw.Flush()
}

func printDashboardSimple(w io.Writer, d client.Dashboard) error {
	printCounts(w, d)

	if len(d.Applications) == 0 {
		fmt.Fprintln(w, "No applications found.")
		return nil
	}
	for i, a := range d.Applications {
		fmt.Fprintf(w, "%d. %s at %s [%s]\n", i+1, a.JobTitle, a.CompanyName, badge(a.Status))
		fmt.Fprintf(w, "   ID: %s | Applied: %s\n", a.ID, a.AppliedDate)
	}
	return nil
}

// printCounts writes the per-status totals of the whole list, independent
// of the active filter.
func printCounts(w io.Writer, d client.Dashboard) {
	parts := make([]string, 0, len(statuses)+1)
	parts = append(parts, fmt.Sprintf("all %d", d.Counts["all"]))
	for _, s := range statuses {
		parts = append(parts, fmt.Sprintf("%s %d", badge(s), d.Counts[s]))
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, " | "))
	fmt.Fprintf(w, "Filter: %s, sort: %s\n\n", d.Filter, d.Sort)
}

func printApplication(w io.Writer, a client.Application) {
	fmt.Fprintf(w, "ID:       %s\n", a.ID)
	fmt.Fprintf(w, "Company:  %s\n", a.CompanyName)
	fmt.Fprintf(w, "Title:    %s\n", a.JobTitle)
	fmt.Fprintf(w, "Status:   %s\n", badge(a.Status))
	fmt.Fprintf(w, "Applied:  %s\n", a.AppliedDate)
	if a.ApplicationURL != "" {
		fmt.Fprintf(w, "URL:      %s\n", a.ApplicationURL)
	}
	fmt.Fprintf(w, "Created:  %s\n", a.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Updated:  %s\n", a.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
