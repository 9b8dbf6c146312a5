// Copyright 2020-2021 Dolthub, Inc.
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

package graph

import "sync"

// TypeKey names the output type of a node: "number", "string", "boolean",
// an opaque application-defined key, or the wildcard Any.
type TypeKey string

// Any matches any type-key during arity/type validation.
const Any TypeKey = "any"

// Signature is a concrete node kind's registry descriptor: the declared
// type-key of each input (by position) and the type-key the kind produces.
type Signature struct {
	Inputs []TypeKey
	Output TypeKey
}

// Trait is a registry descriptor for a polymorphic kind whose concrete
// resolution depends on the type-key of its first child's resolved output.
type Trait struct {
	Output   TypeKey
	Dispatch map[TypeKey]string
}

// entry is either a Signature or a Trait, never both.
type entry struct {
	sig   *Signature
	trait *Trait
}

// Registry is a process-wide, append-only table mapping kind strings to
// either a concrete Signature or a Trait descriptor. It is safe for
// concurrent reads; writes (plugin registration) are expected to happen
// during initialization, serialized by the caller or by the embedded mutex.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// RegisterSignature adds a concrete kind to the registry.
func (r *Registry) RegisterSignature(kind string, sig Signature) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = entry{sig: &sig}
}

// RegisterTrait adds a trait kind to the registry.
func (r *Registry) RegisterTrait(kind string, t Trait) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = entry{trait: &t}
}

// Signature returns the concrete signature registered for kind, if any.
func (r *Registry) Signature(kind string) (Signature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[kind]
	if !ok || e.sig == nil {
		return Signature{}, false
	}
	return *e.sig, true
}

// TraitDescriptor returns the trait registered for kind, if any.
func (r *Registry) TraitDescriptor(kind string) (Trait, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[kind]
	if !ok || e.trait == nil {
		return Trait{}, false
	}
	return *e.trait, true
}

// IsTrait reports whether kind is registered as a trait.
func (r *Registry) IsTrait(kind string) bool {
	_, ok := r.TraitDescriptor(kind)
	return ok
}

// Kinds enumerates every kind string registered, concrete or trait.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	return kinds
}

// TypeMatches reports whether an input declared as want is satisfied by an
// actual output type-key got. The wildcard Any matches anything.
func TypeMatches(want, got TypeKey) bool {
	return want == Any || want == got
}
