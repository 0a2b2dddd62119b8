// Package flow implements the onboarding wizard state machine: a fixed
// identity step followed by two admin-configured steps, accumulating a
// single draft that is submitted once at the end.
package flow

import (
	"context"
	"errors"

	"onboard/internal/catalog"
	"onboard/internal/config"
	"onboard/internal/logging"
	"onboard/internal/user"
)

const (
	// FirstStep is the fixed identity step, always present.
	FirstStep = 1
	// FinalStep is the terminal wizard step where submission happens.
	FinalStep = 3
)

// ConfigSource supplies the step configuration snapshot the wizard renders
// from. Fetched once at engine start; no live reload mid-session.
type ConfigSource interface {
	FetchConfig(ctx context.Context) (config.StepConfig, error)
}

// UserCreator receives the completed draft.
type UserCreator interface {
	CreateUser(ctx context.Context, sub user.Submission) (user.Record, error)
}

var (
	// ErrValidationFailed means the current step's inputs did not pass;
	// field messages are on ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")
	// ErrSubmissionInFlight means a submission is already outstanding.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrNotAtFinalStep means Submit was called before the terminal step.
	ErrNotAtFinalStep = errors.New("not at final step")
)

// Engine owns one wizard session: the current step, the draft, and the
// validation state. It is not safe for concurrent use; a session is driven
// by a single caller.
type Engine struct {
	source  ConfigSource
	creator UserCreator
	logger  logging.Logger

	cfg      config.StepConfig
	step     int
	draft    user.Submission
	errs     map[string]string
	inFlight bool
}

// NewEngine creates a wizard session at step 1 with an empty draft and an
// empty configuration. Call LoadConfiguration before rendering steps 2–3.
func NewEngine(source ConfigSource, creator UserCreator) *Engine {
	return &Engine{
		source:  source,
		creator: creator,
		logger:  logging.NewComponentLogger("FlowEngine"),
		cfg:     config.Empty(),
		step:    FirstStep,
		errs:    map[string]string{},
	}
}

// LoadConfiguration fetches the step configuration once. On failure the
// configuration stays empty, so steps 2–3 render no optional fields but the
// wizard remains navigable.
func (e *Engine) LoadConfiguration(ctx context.Context) {
	cfg, err := e.source.FetchConfig(ctx)
	if err != nil {
		e.logger.Warn("Failed to load configuration, continuing with empty steps: %v", err)
		return
	}
	e.cfg = cfg.Normalized()
}

// Step returns the current wizard step.
func (e *Engine) Step() int {
	return e.step
}

// Draft returns a copy of the in-progress submission.
func (e *Engine) Draft() user.Submission {
	return e.draft
}

// Submitting reports whether a submission is outstanding.
func (e *Engine) Submitting() bool {
	return e.inFlight
}

// ValidationErrors returns the field-scoped messages from the last failed
// validation. Empty when the last validation passed.
func (e *Engine) ValidationErrors() map[string]string {
	out := make(map[string]string, len(e.errs))
	for k, v := range e.errs {
		out[k] = v
	}
	return out
}

// SetField mutates one draft field by its wire name. Unknown names are
// ignored so a drifted configuration cannot corrupt the draft.
func (e *Engine) SetField(name, value string) {
	switch name {
	case "email":
		e.draft.Email = value
	case "password":
		e.draft.Password = value
	case "aboutMe":
		e.draft.AboutMe = value
	case "street":
		e.draft.Street = value
	case "city":
		e.draft.City = value
	case "state":
		e.draft.State = value
	case "zip":
		e.draft.Zip = value
	case "birthdate":
		e.draft.Birthdate = value
	}
}

// Advance validates the current step and moves forward on success, capped at
// the terminal step. On failure the step does not change and the field
// messages are recorded.
func (e *Engine) Advance() bool {
	errs := validateStep(e.step, e.draft)
	if len(errs) > 0 {
		e.errs = errs
		return false
	}
	e.errs = map[string]string{}
	if e.step < FinalStep {
		e.step++
	}
	return true
}

// Retreat moves one step back, floor 1. No validation going backward.
func (e *Engine) Retreat() {
	if e.step > FirstStep {
		e.step--
	}
}

// Submit sends the draft at the terminal step. It re-runs validation against
// stale state, refuses re-entry while a submission is outstanding, and
// releases the in-flight gate on every exit path. On success the draft and
// step reset; on failure the draft stays intact for retry.
func (e *Engine) Submit(ctx context.Context) error {
	if e.step != FinalStep {
		return ErrNotAtFinalStep
	}
	if e.inFlight {
		return ErrSubmissionInFlight
	}
	if errs := validateStep(e.step, e.draft); len(errs) > 0 {
		e.errs = errs
		return ErrValidationFailed
	}
	e.errs = map[string]string{}

	e.inFlight = true
	defer func() { e.inFlight = false }()

	if _, err := e.creator.CreateUser(ctx, e.draft); err != nil {
		e.logger.Error("Submission failed: %v", err)
		return err
	}

	e.draft = user.Submission{}
	e.step = FirstStep
	return nil
}

// VisibleGroups returns the field groups configured for a step, in catalog
// order. Step 1 has no configurable groups.
func (e *Engine) VisibleGroups(step int) []catalog.Group {
	return e.cfg.Visible(step)
}

// RenderableFields returns the catalog entries to render on a step.
func (e *Engine) RenderableFields(step int) []catalog.Entry {
	groups := e.VisibleGroups(step)
	out := make([]catalog.Entry, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Entry())
	}
	return out
}
