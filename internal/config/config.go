// Package config models the admin-controlled step configuration: which
// catalog field groups appear on wizard steps 2 and 3. There is exactly one
// live configuration; it is read wholesale by the wizard and replaced
// wholesale by the admin editor.
package config

import (
	"onboard/internal/catalog"
)

// Wizard step numbers. Step 1 is the fixed identity step and is never
// configured; only steps 2 and 3 carry admin-selected field groups.
const (
	FirstConfigurableStep = 2
	LastConfigurableStep  = 3
)

// StepConfig is the singleton configuration resource in its wire shape.
type StepConfig struct {
	Page2Components []string `json:"page2Components"`
	Page3Components []string `json:"page3Components"`
}

// Default is the configuration seeded when the store holds nothing yet.
func Default() StepConfig {
	return StepConfig{
		Page2Components: []string{"aboutMe", "birthdate"},
		Page3Components: []string{"address"},
	}
}

// Empty is the fail-open fallback: both steps render no optional fields.
func Empty() StepConfig {
	return StepConfig{
		Page2Components: []string{},
		Page3Components: []string{},
	}
}

// Components returns the configured id set for a wizard step. Steps outside
// the configurable range have no optional fields.
func (c StepConfig) Components(step int) []string {
	switch step {
	case 2:
		return c.Page2Components
	case 3:
		return c.Page3Components
	default:
		return nil
	}
}

// Visible returns the renderable field groups for a step, in catalog order.
func (c StepConfig) Visible(step int) []catalog.Group {
	return catalog.Visible(c.Components(step))
}

// Contains reports whether a step's set includes the given field id.
func (c StepConfig) Contains(step int, id string) bool {
	for _, v := range c.Components(step) {
		if v == id {
			return true
		}
	}
	return false
}

// Normalized applies set semantics: duplicates collapse, unknown ids drop
// out, and order follows the catalog. The stores persist only normalized
// configurations so every reader sees the same canonical shape.
func (c StepConfig) Normalized() StepConfig {
	return StepConfig{
		Page2Components: normalizeSet(c.Page2Components),
		Page3Components: normalizeSet(c.Page3Components),
	}
}

func normalizeSet(ids []string) []string {
	groups := catalog.Visible(ids)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.String())
	}
	return out
}
