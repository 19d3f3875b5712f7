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

// Package cbor is a small wrapper around fxamacker/cbor with the options used
// for decoding Cardano address payloads.
package cbor

import (
	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeByteString uint8 = 0x40

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Tag used for wrapped (embedded) CBOR, as seen in Byron addresses
	CborTagCbor = 24
)

// Alias for Tag for convenience
type Tag = _cbor.Tag

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

// MajorType returns the CBOR major type of the first data item in the provided data
func MajorType(data []byte) (uint8, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return data[0] & CborTypeMask, true
}
