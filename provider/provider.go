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

// Package provider catalogs the supported wallet providers and looks them up in
// the host environment's injected namespace.
//
// Injected providers are owned by the host and may appear or disappear at any
// time, so nothing in this package caches a lookup.
package provider

import (
	"github.com/jinzhu/copier"
)

// Id identifies a wallet provider. It is also the key the provider is injected under
type Id string

const (
	IdYoroi  Id = "yoroi"
	IdLace   Id = "lace"
	IdEternl Id = "eternl"
)

// Descriptor describes a supported wallet provider
type Descriptor struct {
	Id    Id
	Label string
}

// Compiled-in catalog. Order is display order
var knownProviders = []Descriptor{
	{Id: IdYoroi, Label: "Yoroi"},
	{Id: IdLace, Label: "Lace"},
	{Id: IdEternl, Label: "Eternl"},
}

// Namespace is the host environment's injected provider namespace
type Namespace interface {
	// Lookup returns the handle injected under id, if any
	Lookup(id Id) (Handle, bool)
}

// KnownProviders returns a copy of the supported provider catalog
func KnownProviders() []Descriptor {
	var ret []Descriptor
	if err := copier.Copy(&ret, knownProviders); err != nil {
		panic("unexpected error copying provider catalog: " + err.Error())
	}
	return ret
}

// DescriptorById returns the catalog entry for id
func DescriptorById(id Id) (Descriptor, bool) {
	for _, desc := range knownProviders {
		if desc.Id == id {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// Label returns the display label for id, falling back to the id itself for
// providers outside the catalog
func Label(id Id) string {
	if desc, ok := DescriptorById(id); ok {
		return desc.Label
	}
	return string(id)
}

// IsPresent reports whether a provider is injected under id. A nil namespace, a missing key
// or a lookup that panics all report false
func IsPresent(ns Namespace, id Id) (present bool) {
	if ns == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			present = false
		}
	}()
	handle, ok := ns.Lookup(id)
	return ok && handle != nil
}

// PresentProviders returns the catalog entries currently injected into ns, in catalog order
func PresentProviders(ns Namespace) []Descriptor {
	ret := []Descriptor{}
	for _, desc := range KnownProviders() {
		if IsPresent(ns, desc.Id) {
			ret = append(ret, desc)
		}
	}
	return ret
}
