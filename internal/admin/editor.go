// Package admin implements the configuration editor: a local working copy of
// the step configuration with per-step field toggles, saved back wholesale.
package admin

import (
	"context"
	"errors"
	"fmt"

	"onboard/internal/catalog"
	"onboard/internal/config"
	"onboard/internal/logging"
)

// ConfigClient is the editor's view of the configuration resource.
type ConfigClient interface {
	FetchConfig(ctx context.Context) (config.StepConfig, error)
	SaveConfig(ctx context.Context, cfg config.StepConfig) (config.StepConfig, error)
}

var (
	// ErrSaveInFlight means a save is already outstanding.
	ErrSaveInFlight = errors.New("save already in flight")
	// ErrUnknownField means the toggled id is not in the catalog.
	ErrUnknownField = errors.New("unknown field id")
	// ErrUnknownStep means the step is not admin-configurable.
	ErrUnknownStep = errors.New("step is not configurable")
)

// Editor holds the admin's working copy. Toggles are purely in-memory until
// an explicit save, which replaces the whole stored configuration
// (last write wins; no optimistic concurrency).
type Editor struct {
	client  ConfigClient
	logger  logging.Logger
	working config.StepConfig
	loaded  bool
	saving  bool
}

// NewEditor creates an editor with an empty working copy.
func NewEditor(client ConfigClient) *Editor {
	return &Editor{
		client:  client,
		logger:  logging.NewComponentLogger("AdminEditor"),
		working: config.Empty(),
	}
}

// Load fetches the stored configuration into the working copy. On failure
// the working copy stays empty and the editor remains usable; loading never
// blocks indefinitely on a failed fetch.
func (e *Editor) Load(ctx context.Context) {
	defer func() { e.loaded = true }()

	cfg, err := e.client.FetchConfig(ctx)
	if err != nil {
		e.logger.Warn("Failed to load configuration, starting from empty: %v", err)
		return
	}
	e.working = cfg.Normalized()
}

// Loaded reports whether the initial fetch has resolved.
func (e *Editor) Loaded() bool {
	return e.loaded
}

// Saving reports whether a save is outstanding.
func (e *Editor) Saving() bool {
	return e.saving
}

// Working returns the current working copy.
func (e *Editor) Working() config.StepConfig {
	return e.working
}

// Toggle flips membership of a catalog field on a configurable step: present
// removes, absent appends. Calling it twice with the same arguments restores
// the original membership.
func (e *Editor) Toggle(step int, fieldID string) error {
	if step < config.FirstConfigurableStep || step > config.LastConfigurableStep {
		return fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
	if _, ok := catalog.Lookup(fieldID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, fieldID)
	}

	ids := e.working.Components(step)
	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == fieldID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, fieldID)
	}

	switch step {
	case 2:
		e.working.Page2Components = next
	case 3:
		e.working.Page3Components = next
	}
	return nil
}

// Preview lists, per configurable step, the labels of currently toggled
// fields in catalog order. Pure; no side effects.
func (e *Editor) Preview() map[int][]string {
	out := make(map[int][]string, 2)
	for step := config.FirstConfigurableStep; step <= config.LastConfigurableStep; step++ {
		groups := e.working.Visible(step)
		labels := make([]string, 0, len(groups))
		for _, g := range groups {
			labels = append(labels, g.Label())
		}
		out[step] = labels
	}
	return out
}

// Save replaces the stored configuration with the working copy. On success
// the working copy adopts the echoed stored shape; on failure it is left
// unchanged so the admin can retry without re-toggling. The saving gate is
// released on every exit path.
func (e *Editor) Save(ctx context.Context) error {
	if e.saving {
		return ErrSaveInFlight
	}
	e.saving = true
	defer func() { e.saving = false }()

	stored, err := e.client.SaveConfig(ctx, e.working)
	if err != nil {
		e.logger.Error("Failed to save configuration: %v", err)
		return err
	}
	e.working = stored.Normalized()
	return nil
}
