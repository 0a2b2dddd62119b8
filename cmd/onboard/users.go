package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"onboard/internal/review"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newUsersCommand() *cobra.Command {
	var (
		search     string
		sortColumn string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Review submitted users",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := review.NewTable(apiClient())
			table.Load(cmd.Context())
			table.SetSearch(search)

			field := review.ParseField(sortColumn)
			if current, _ := table.Sort(); current != field {
				table.ToggleSort(field)
			}
			if descending {
				table.ToggleSort(field)
			}

			renderUsers(table)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by substring of email, about-me or address")
	cmd.Flags().StringVar(&sortColumn, "sort", "birthdate", "Sort column: email, aboutMe, address, birthdate, createdAt")
	cmd.Flags().BoolVar(&descending, "desc", false, "Sort descending")

	return cmd
}

func renderUsers(table *review.Table) {
	rows := table.Rows()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("EMAIL"),
		headerStyle.Render("ABOUT ME"),
		headerStyle.Render("ADDRESS"),
		headerStyle.Render("BIRTHDATE"),
		headerStyle.Render("CREATED"),
	)
	for _, rec := range rows {
		created := ""
		if !rec.CreatedAt.IsZero() {
			created = rec.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.Email, orDash(rec.AboutMe), orDash(rec.Address), orDash(rec.Birthdate), orDash(created))
	}
	w.Flush()

	fmt.Println(countStyle.Render(fmt.Sprintf("%d of %d users", len(rows), table.Total())))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
