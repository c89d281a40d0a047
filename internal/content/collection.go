// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "sync"

// Collection is the shared, observable store for one content type.
// List views read from it and create forms append to it.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	subs    map[int]func([]T)
	nextSub int
}

// NewCollection creates a collection holding a copy of seed.
func NewCollection[T any](seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{
		items: items,
		subs:  make(map[int]func([]T)),
	}
}

// All returns a snapshot of the items in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Replace swaps the contents for items.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	snap, subs := c.snapshot(), c.subscribers()
	c.mu.Unlock()

	publish(subs, snap)
}

// Append adds item to the end.
func (c *Collection[T]) Append(item T) {
	c.AppendWith(func([]T) T { return item })
}

// AppendWith builds an item from the current contents and appends it
// atomically. It returns the appended item.
func (c *Collection[T]) AppendWith(build func(current []T) T) T {
	c.mu.Lock()
	item := build(c.items)
	c.items = append(c.items, item)
	snap, subs := c.snapshot(), c.subscribers()
	c.mu.Unlock()

	publish(subs, snap)
	return item
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned function removes the subscription.
func (c *Collection[T]) Subscribe(fn func(items []T)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// snapshot must be called with c.mu held.
func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// subscribers must be called with c.mu held.
func (c *Collection[T]) subscribers() []func([]T) {
	subs := make([]func([]T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return subs
}

func publish[T any](subs []func([]T), items []T) {
	for _, fn := range subs {
		fn(items)
	}
}
