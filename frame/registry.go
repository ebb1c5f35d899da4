// Copyright 2026 The Firn Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import (
	"sync"
	"sync/atomic"
)

// Registry owns the mapping from Handle to the engine-owned object it
// names (a *Frame, a backend.Op, or a *backend.GroupedOp — kept as
// interface{} here because package backend imports frame). Token
// minting is a monotonic counter guarded the way driver.go's
// catalog.nextConnectionID/nextProcessID mint connection and process
// ids in the teacher repo.
type Registry struct {
	next    atomic.Uint64
	mu      sync.Mutex
	objects map[Handle]registryEntry
}

type registryEntry struct {
	tag   ContextTag
	value interface{}
}

// NewRegistry constructs an empty handle registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[Handle]registryEntry)}
}

// Put mints a new handle for value tagged with tag and stores it.
func (r *Registry) Put(tag ContextTag, value interface{}) Handle {
	h := Handle(r.next.Add(1))
	r.mu.Lock()
	r.objects[h] = registryEntry{tag: tag, value: value}
	r.mu.Unlock()
	return h
}

// Get returns the object stored under h, its tag, and whether it was
// found.
func (r *Registry) Get(h Handle) (interface{}, ContextTag, bool) {
	if h == NoHandle {
		return nil, ContextNone, false
	}
	r.mu.Lock()
	e, ok := r.objects[h]
	r.mu.Unlock()
	if !ok {
		return nil, ContextNone, false
	}
	return e.value, e.tag, true
}

// Release drops h from the registry. Releasing an unknown or zero
// handle is a no-op, matching spec.md's "the initial input handle is
// not freed by the engine on failure" discipline — callers may safely
// release defensively.
func (r *Registry) Release(h Handle) {
	if h == NoHandle {
		return
	}
	r.mu.Lock()
	delete(r.objects, h)
	r.mu.Unlock()
}

// Replace atomically swaps the object under h in place rather than
// minting a fresh handle. Nothing in this module calls it; the chain
// driver and the handlers mint new handles with Put. Unused tokens are never reused by
// Put, so Replace is purely a convenience over Release+Put with the
// same token.
func (r *Registry) Replace(h Handle, tag ContextTag, value interface{}) {
	r.mu.Lock()
	r.objects[h] = registryEntry{tag: tag, value: value}
	r.mu.Unlock()
}
