package main

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"onboard/internal/admin"
	"onboard/internal/catalog"
	"onboard/internal/config"
)

func newAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Configure which fields appear on steps 2-3",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := admin.NewEditor(apiClient())
			editor.Load(cmd.Context())
			return runAdmin(cmd, editor)
		},
	}
}

func runAdmin(cmd *cobra.Command, editor *admin.Editor) error {
	for {
		printPreview(editor)

		items := toggleItems(editor)
		items = append(items, "Save configuration", "Quit")

		sel := promptui.Select{Label: "Toggle a field, or save", Items: items, Size: len(items)}
		idx, choice, err := sel.Run()
		if err != nil {
			return err
		}

		switch choice {
		case "Save configuration":
			if err := editor.Save(cmd.Context()); err != nil {
				// Working copy is untouched; the admin can retry.
				fmt.Println(errorMsg("Failed to save configuration: " + err.Error()))
				continue
			}
			fmt.Println(successMsg("Configuration saved successfully!"))
		case "Quit":
			return nil
		default:
			step, fieldID := toggleTarget(idx)
			if err := editor.Toggle(step, fieldID); err != nil {
				fmt.Println(errorMsg(err.Error()))
			}
		}
	}
}

// toggleItems lists every (step, field) pair with its current membership.
func toggleItems(editor *admin.Editor) []string {
	working := editor.Working()
	items := make([]string, 0, 2*len(catalog.Entries()))
	for step := config.FirstConfigurableStep; step <= config.LastConfigurableStep; step++ {
		for _, entry := range catalog.Entries() {
			mark := "[ ]"
			if working.Contains(step, entry.ID) {
				mark = "[x]"
			}
			items = append(items, fmt.Sprintf("Step %d %s %s", step, mark, entry.Label))
		}
	}
	return items
}

// toggleTarget maps a selected toggle row back to its step and field id.
func toggleTarget(idx int) (int, string) {
	perStep := len(catalog.Entries())
	step := config.FirstConfigurableStep + idx/perStep
	return step, catalog.Entries()[idx%perStep].ID
}

func printPreview(editor *admin.Editor) {
	fmt.Printf("\n%s\n", bold("Configuration preview"))
	preview := editor.Preview()
	for step := config.FirstConfigurableStep; step <= config.LastConfigurableStep; step++ {
		labels := preview[step]
		if len(labels) == 0 {
			fmt.Printf("  Step %d: %s\n", step, gray("no fields selected"))
			continue
		}
		fmt.Printf("  Step %d: %s\n", step, strings.Join(labels, ", "))
	}
}
