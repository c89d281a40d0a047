// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/olegiv/merwah-go/internal/notify"
)

// Loader fetches a collection from a remote source.
type Loader[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc[T any] func(ctx context.Context) ([]T, error)

// Load calls f(ctx).
func (f LoaderFunc[T]) Load(ctx context.Context) ([]T, error) { return f(ctx) }

// View is the filtered state of a list page.
type View[T any] struct {
	Items     []T
	Term      string
	Total     int
	Loading   bool
	NoResults bool
}

// ListView backs a list page: it loads the collection, if remote, and filters it.
type ListView[T any] struct {
	store     *Collection[T]
	fields    FieldsFunc[T]
	loader    Loader[T]
	loadError notify.Notification
	loading   atomic.Bool
}

// NewListView creates a list view over a locally seeded collection.
func NewListView[T any](store *Collection[T], fields FieldsFunc[T]) *ListView[T] {
	return &ListView[T]{store: store, fields: fields}
}

// NewRemoteListView creates a list view whose collection is fetched by loader.
// It reports loading until Init settles; onError is emitted if the fetch fails.
func NewRemoteListView[T any](store *Collection[T], fields FieldsFunc[T], loader Loader[T], onError notify.Notification) *ListView[T] {
	v := &ListView[T]{
		store:     store,
		fields:    fields,
		loader:    loader,
		loadError: onError,
	}
	v.loading.Store(true)
	return v
}

// Init fetches the remote collection and replaces the store contents with it.
// On failure the store is left as it was and the error notification is sent.
// Local list views have nothing to fetch.
func (v *ListView[T]) Init(ctx context.Context, sink notify.Sink) error {
	if v.loader == nil {
		return nil
	}
	defer v.loading.Store(false)

	items, err := v.loader.Load(ctx)
	if err != nil {
		sink.Notify(v.loadError)
		return fmt.Errorf("loading collection: %w", err)
	}
	v.store.Replace(items)
	return nil
}

// Loading reports whether the initial fetch is still pending.
func (v *ListView[T]) Loading() bool {
	return v.loading.Load()
}

// View filters the collection by term.
func (v *ListView[T]) View(term string) View[T] {
	all := v.store.All()
	loading := v.Loading()

	var items []T
	if !loading {
		items = Filter(all, term, v.fields)
	}

	return View[T]{
		Items:     items,
		Term:      term,
		Total:     len(all),
		Loading:   loading,
		NoResults: !loading && len(items) == 0,
	}
}
