// Copyright 2026 Blink Labs Software
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

package provider

import (
	"context"
	"errors"
	"sync"
)

var ErrNilHandle = errors.New("nil provider handle")

// StaticNamespace is an in-memory Namespace for hosts that inject providers from Go
type StaticNamespace struct {
	mutex   sync.RWMutex
	handles map[Id]Handle
}

func NewStaticNamespace() *StaticNamespace {
	return &StaticNamespace{
		handles: make(map[Id]Handle),
	}
}

// Set injects handle under id, replacing any existing one
func (s *StaticNamespace) Set(id Id, handle Handle) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.handles[id] = handle
}

// Remove removes the handle injected under id
func (s *StaticNamespace) Remove(id Id) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.handles, id)
}

func (s *StaticNamespace) Lookup(id Id) (Handle, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	handle, ok := s.handles[id]
	if staticHandle, isStatic := handle.(*StaticHandle); isStatic && staticHandle == nil {
		return nil, false
	}
	return handle, ok
}

// StaticHandle is a Handle that grants a fixed session or fails with a fixed error
type StaticHandle struct {
	Session   *Session
	EnableErr error
}

func (h *StaticHandle) Enable(ctx context.Context) (*Session, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if h.EnableErr != nil {
		return nil, h.EnableErr
	}
	if h.Session == nil {
		return &Session{}, nil
	}
	return h.Session, nil
}
