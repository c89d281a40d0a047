// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type draftEntry[F any] struct {
	form    F
	touched time.Time
}

// Drafts keeps open create forms between requests, keyed by draft id.
type Drafts[F any] struct {
	open func() F
	now  Clock

	mu    sync.Mutex
	items map[string]*draftEntry[F]
}

// NewDrafts creates a registry that builds new forms with open.
func NewDrafts[F any](open func() F) *Drafts[F] {
	return &Drafts[F]{
		open:  open,
		now:   time.Now,
		items: make(map[string]*draftEntry[F]),
	}
}

// Open creates a new form and returns its id.
func (d *Drafts[F]) Open() (string, F) {
	id := uuid.NewString()
	form := d.open()

	d.mu.Lock()
	d.items[id] = &draftEntry[F]{form: form, touched: d.now()}
	d.mu.Unlock()

	return id, form
}

// Get returns the form with the given id and marks it as used.
func (d *Drafts[F]) Get(id string) (F, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.items[id]
	if !ok {
		var zero F
		return zero, false
	}
	entry.touched = d.now()
	return entry.form, true
}

// Resume returns the form with the given id, or opens a new one when the
// id is unknown or malformed.
func (d *Drafts[F]) Resume(id string) (string, F) {
	if _, err := uuid.Parse(id); err == nil {
		if form, ok := d.Get(id); ok {
			return id, form
		}
	}
	return d.Open()
}

// Drop forgets the form with the given id.
func (d *Drafts[F]) Drop(id string) {
	d.mu.Lock()
	delete(d.items, id)
	d.mu.Unlock()
}

// Len returns the number of open forms.
func (d *Drafts[F]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Prune drops forms idle for longer than maxAge and returns how many were dropped.
func (d *Drafts[F]) Prune(maxAge time.Duration) int {
	cutoff := d.now().Add(-maxAge)

	d.mu.Lock()
	defer d.mu.Unlock()

	pruned := 0
	for id, entry := range d.items {
		if entry.touched.Before(cutoff) {
			delete(d.items, id)
			pruned++
		}
	}
	return pruned
}
