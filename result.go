// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"sort"
	"sync"
)

// ResultContainer owns the currently displayed data document.
//
// Replace swaps the whole document and then notifies subscribers
// synchronously in registration order. Replacements are serialized, so a
// subscriber never observes an older document after a newer one. Subscribers
// must not call Replace from inside the notification.
type ResultContainer struct {
	subscribers map[int]func(AnalysisResult)
	current     AnalysisResult
	version     uint64
	nextID      int

	mu       sync.RWMutex
	notifyMu sync.Mutex
}

// NewResultContainer creates container holding initial document.
func NewResultContainer(initial AnalysisResult) *ResultContainer {
	return &ResultContainer{
		current:     initial,
		subscribers: make(map[int]func(AnalysisResult)),
	}
}

// Get returns the current document.
func (container *ResultContainer) Get() AnalysisResult {
	container.mu.RLock()
	defer container.mu.RUnlock()

	return container.current
}

// Version returns number of replacements applied so far.
func (container *ResultContainer) Version() uint64 {
	container.mu.RLock()
	defer container.mu.RUnlock()

	return container.version
}

// Snapshot returns current document together with its version.
func (container *ResultContainer) Snapshot() (AnalysisResult, uint64) {
	container.mu.RLock()
	defer container.mu.RUnlock()

	return container.current, container.version
}

// Replace records next as the current document and notifies subscribers.
// It returns the version assigned to next.
func (container *ResultContainer) Replace(next AnalysisResult) uint64 {
	container.notifyMu.Lock()
	defer container.notifyMu.Unlock()

	container.mu.Lock()
	container.current = next
	container.version++
	version := container.version
	subscribers := container.orderedSubscribers()
	container.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(next)
	}

	return version
}

// OnResultChange returns the replacement callback handed to data displays.
func (container *ResultContainer) OnResultChange() func(AnalysisResult) {
	return func(next AnalysisResult) {
		container.Replace(next)
	}
}

// Subscribe registers fn for replacement notifications and returns unsubscribe.
func (container *ResultContainer) Subscribe(fn func(AnalysisResult)) func() {
	if fn == nil {
		return func() {}
	}

	container.mu.Lock()
	id := container.nextID
	container.nextID++
	container.subscribers[id] = fn
	container.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			container.mu.Lock()
			delete(container.subscribers, id)
			container.mu.Unlock()
		})
	}
}

// orderedSubscribers returns subscribers sorted by registration; caller holds mu.
func (container *ResultContainer) orderedSubscribers() []func(AnalysisResult) {
	if len(container.subscribers) == 0 {
		return nil
	}

	ids := make([]int, 0, len(container.subscribers))
	for id := range container.subscribers {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	out := make([]func(AnalysisResult), 0, len(ids))
	for _, id := range ids {
		out = append(out, container.subscribers[id])
	}

	return out
}
