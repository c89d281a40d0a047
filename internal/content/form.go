// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
)

// Outlet receives the effects of a form submission.
type Outlet interface {
	notify.Sink
	Navigate(path string)
}

// Capture is an Outlet that records what a submission did.
type Capture struct {
	notify.Recorder
	Target string
}

// Navigate records path as the navigation target.
func (c *Capture) Navigate(path string) { c.Target = path }

// Navigated reports whether the submission asked to leave the form.
func (c *Capture) Navigated() bool { return c.Target != "" }

// SubmitFunc persists a validated draft. When reset is true the form
// returns to its empty state.
type SubmitFunc[D any] func(ctx context.Context, out Outlet, draft D, status model.Status) (reset bool, err error)

// FormConfig describes one content type's create form.
type FormConfig[D any] struct {
	// Statuses lists the statuses the type accepts. Nil means the type has no status.
	Statuses []model.Status
	// RequiredMessage is shown when required fields are missing.
	RequiredMessage string
	Submit          SubmitFunc[D]
}

// Form is the create-form controller for one draft.
type Form[D any] struct {
	cfg FormConfig[D]

	mu     sync.Mutex
	draft  D
	status model.Status

	inFlight atomic.Bool
}

// NewForm creates an empty form.
func NewForm[D any](cfg FormConfig[D]) *Form[D] {
	f := &Form[D]{cfg: cfg}
	if cfg.Statuses != nil {
		f.status = model.StatusDraft
	}
	return f
}

// Draft returns a copy of the current draft.
func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Status returns the status tag of the draft.
func (f *Form[D]) Status() model.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Statuses returns the statuses the form accepts.
func (f *Form[D]) Statuses() []model.Status {
	return f.cfg.Statuses
}

// UpdateField sets one draft field. No validation is done.
func (f *Form[D]) UpdateField(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return decodeField(&f.draft, key, value)
}

// Apply sets every draft field present in values and ignores other keys.
func (f *Form[D]) Apply(values url.Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return decodeForm(&f.draft, values)
}

// Mutate runs fn against the draft under the form lock.
func (f *Form[D]) Mutate(fn func(d *D)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
}

// Validate checks the required fields of the draft.
func (f *Form[D]) Validate() error {
	return Validate(f.Draft())
}

// Reset empties the draft and returns the status to Draft.
func (f *Form[D]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form[D]) reset() {
	var zero D
	f.draft = zero
	if f.cfg.Statuses != nil {
		f.status = model.StatusDraft
	}
}

// Submit validates the draft and hands it to the content type's submit
// function with the given status. An empty status keeps the current one.
// Only one submission runs at a time.
func (f *Form[D]) Submit(ctx context.Context, out Outlet, status model.Status) error {
	if !f.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	draft, current := f.draft, f.status
	f.mu.Unlock()

	if status == "" {
		status = current
	}
	if f.cfg.Statuses != nil {
		if !model.StatusAllowed(status, f.cfg.Statuses) || !model.CanTransition(current, status) {
			return fmt.Errorf("%w: %q after %q", ErrInvalidStatus, status, current)
		}
	}

	if err := Validate(draft); err != nil {
		out.Notify(notify.Notification{
			Title:       "Validation Error",
			Description: f.cfg.RequiredMessage,
			Variant:     notify.VariantDestructive,
		})
		return err
	}

	reset, err := f.cfg.Submit(ctx, out, draft, status)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if reset {
		f.reset()
	} else {
		f.status = status
	}
	return nil
}

// Publish submits the draft as Published.
func (f *Form[D]) Publish(ctx context.Context, out Outlet) error {
	return f.Submit(ctx, out, model.StatusPublished)
}
