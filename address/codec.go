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

package address

import (
	"github.com/blinklabs-io/stakeconnect/cbor"
)

// Codec converts raw address bytes into their bech32 form
type Codec struct{}

// BytesToBech32 decodes the provided address bytes and returns the bech32 encoding.
//
// Input that is exactly one CBOR byte string is unwrapped first. No raw Shelley address on
// network 0 or 1 is also a complete CBOR byte string, so this can't misread a bare address
func (Codec) BytesToBech32(data []byte) (string, error) {
	if inner, err := cbor.UnwrapByteString(data); err == nil {
		data = inner
	}
	addr, err := NewAddressFromBytes(data)
	if err != nil {
		return "", err
	}
	return addr.Bech32()
}
