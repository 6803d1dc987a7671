// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"sync"
)

// Store serializes dispatches and fans snapshots out to subscribers.
// Thunks run on their own goroutines and dispatch concurrently; the
// mutex guarantees the reducer sees one action at a time, so two
// concurrent operations can interleave their lifecycle actions without
// corrupting a slice.
type Store struct {
	mu          sync.Mutex
	app         App
	subscribers map[int]func(App)
	nextID      int
}

// NewStore creates a store holding [Initial] state.
func NewStore() *Store {
	return &Store{
		app:         Initial(),
		subscribers: make(map[int]func(App)),
	}
}

// Snapshot returns the current state by value.
func (s *Store) Snapshot() App {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app
}

// Dispatch applies one action and notifies subscribers with the
// resulting snapshot. Notification happens outside the lock so a
// subscriber may itself dispatch.
func (s *Store) Dispatch(action Action) App {
	s.mu.Lock()
	s.app = reduce(s.app, action)
	snapshot := s.app
	notify := make([]func(App), 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		notify = append(notify, subscriber)
	}
	s.mu.Unlock()

	for _, subscriber := range notify {
		subscriber(snapshot)
	}
	return snapshot
}

// Subscribe registers a snapshot observer and returns its cancel
// function. Observers registered during a dispatch see the next
// dispatch, not the current one.
func (s *Store) Subscribe(subscriber func(App)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = subscriber
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
