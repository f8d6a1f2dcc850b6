// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg groups benchmark Samples by test mode and version
// and reduces each group into a ranked Summary.
package benchagg

import (
	"sync"

	"github.com/msgperf/msgperf/benchcsv"
)

// A Key identifies one group: all Samples of one test mode from one
// software version.
type Key struct {
	Mode, Version string
}

// A Group is the Samples that share a Key, in the order they were
// added.
type Group struct {
	Key
	Samples []*benchcsv.Sample
}

// A Store accumulates Samples into Groups. It is safe for concurrent
// use.
//
// Groups are kept in first-seen order: modes in the order their first
// Sample was added, and within a mode, versions in the order their
// first Sample was added.
type Store struct {
	mu     sync.Mutex
	groups map[Key]*Group
	modes  []string
	byMode map[string][]*Group
	n      int
}

// Add adds s to the Group for its mode and version, creating the
// Group if needed.
func (st *Store) Add(s *benchcsv.Sample) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.groups == nil {
		st.groups = make(map[Key]*Group)
		st.byMode = make(map[string][]*Group)
	}
	key := Key{s.Mode, s.Version}
	g, ok := st.groups[key]
	if !ok {
		g = &Group{Key: key}
		st.groups[key] = g
		if _, ok := st.byMode[key.Mode]; !ok {
			st.modes = append(st.modes, key.Mode)
		}
		st.byMode[key.Mode] = append(st.byMode[key.Mode], g)
	}
	g.Samples = append(g.Samples, s)
	st.n++
}

// Len returns the number of Samples in st.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.n
}

// Modes returns the test modes in st in first-seen order.
func (st *Store) Modes() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]string(nil), st.modes...)
}

// Group returns the Group for key, or nil if there is none.
func (st *Store) Group(key Key) *Group {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.groups[key]
}

// ModeGroups returns the Groups of one test mode in first-seen
// order.
func (st *Store) ModeGroups(mode string) []*Group {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]*Group(nil), st.byMode[mode]...)
}

// Groups calls yield for each Group in st, in mode order and then
// version order, until yield returns false. Groups must not be
// modified during iteration, and yield must not call Add.
func (st *Store) Groups(yield func(*Group) bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, mode := range st.modes {
		for _, g := range st.byMode[mode] {
			if !yield(g) {
				return
			}
		}
	}
}
