package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"onboard/internal/catalog"
	"onboard/internal/flow"
)

func newWizardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the onboarding steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := apiClient()
			engine := flow.NewEngine(api, api)
			engine.LoadConfiguration(cmd.Context())
			return runWizard(cmd, engine)
		},
	}
}

func runWizard(cmd *cobra.Command, engine *flow.Engine) error {
	for {
		fmt.Printf("\n%s\n", bold(fmt.Sprintf("Step %d of %d", engine.Step(), flow.FinalStep)))

		if err := collectStep(engine); err != nil {
			return err
		}

		if engine.Step() < flow.FinalStep {
			action, err := chooseAction(engine.Step() > flow.FirstStep, "Next")
			if err != nil {
				return err
			}
			switch action {
			case "Back":
				engine.Retreat()
				continue
			case "Quit":
				return nil
			}
			if !engine.Advance() {
				printValidationErrors(engine.ValidationErrors())
			}
			continue
		}

		action, err := chooseAction(true, "Submit")
		if err != nil {
			return err
		}
		switch action {
		case "Back":
			engine.Retreat()
			continue
		case "Quit":
			return nil
		}

		switch err := engine.Submit(cmd.Context()); {
		case err == nil:
			fmt.Println(successMsg("Submitted successfully!"))
			return nil
		case errors.Is(err, flow.ErrValidationFailed):
			printValidationErrors(engine.ValidationErrors())
		default:
			// Draft is preserved; the user decides whether to retry.
			fmt.Println(errorMsg("Failed to submit: " + err.Error()))
			retry, perr := confirm("Try again")
			if perr != nil {
				return perr
			}
			if !retry {
				return nil
			}
		}
	}
}

// collectStep prompts for every field visible on the current step, seeding
// each prompt with the draft's current value so going back re-edits rather
// than re-enters.
func collectStep(engine *flow.Engine) error {
	draft := engine.Draft()

	if engine.Step() == flow.FirstStep {
		email, err := promptValue("Email", draft.Email, false)
		if err != nil {
			return err
		}
		engine.SetField("email", email)

		password, err := promptValue("Password", draft.Password, true)
		if err != nil {
			return err
		}
		engine.SetField("password", password)
		return nil
	}

	groups := engine.VisibleGroups(engine.Step())
	if len(groups) == 0 {
		fmt.Println(gray("No fields configured for this step."))
		return nil
	}
	for _, g := range groups {
		for _, input := range catalog.Inputs(g) {
			value, err := promptValue(input.Label, currentValue(engine, input.Name), false)
			if err != nil {
				return err
			}
			engine.SetField(input.Name, value)
		}
	}
	return nil
}

func currentValue(engine *flow.Engine, name string) string {
	draft := engine.Draft()
	switch name {
	case "aboutMe":
		return draft.AboutMe
	case "street":
		return draft.Street
	case "city":
		return draft.City
	case "state":
		return draft.State
	case "zip":
		return draft.Zip
	case "birthdate":
		return draft.Birthdate
	default:
		return ""
	}
}

func promptValue(label, current string, masked bool) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
	}
	if masked {
		prompt.Mask = '*'
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

func chooseAction(canGoBack bool, forward string) (string, error) {
	items := []string{forward}
	if canGoBack {
		items = append(items, "Back")
	}
	items = append(items, "Quit")

	sel := promptui.Select{Label: "Action", Items: items}
	_, choice, err := sel.Run()
	return choice, err
}

func confirm(label string) (bool, error) {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func printValidationErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Println(yellow(fmt.Sprintf("%s: %s", field, msg)))
	}
}
