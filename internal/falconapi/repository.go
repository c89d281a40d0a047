// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package falconapi

import (
	"sync"

	"github.com/olegiv/merwah-go/internal/model"
)

// Repository holds falcons in creation order.
type Repository struct {
	mu      sync.RWMutex
	falcons []model.Falcon
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// List returns every falcon, oldest first.
func (r *Repository) List() []model.Falcon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Falcon, len(r.falcons))
	copy(out, r.falcons)
	return out
}

// Add stores f.
func (r *Repository) Add(f model.Falcon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.falcons = append(r.falcons, f)
}
