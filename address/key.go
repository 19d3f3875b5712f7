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
	"fmt"

	"filippo.io/edwards25519"
)

const StakeKeySize = 32

// NewStakeAddressFromKey builds a reward address from an Ed25519 stake verification key
func NewStakeAddressFromKey(networkId uint8, pubKey []byte) (Address, error) {
	if len(pubKey) != StakeKeySize {
		return Address{}, fmt.Errorf(
			"invalid stake key length: %d",
			len(pubKey),
		)
	}
	if _, err := new(edwards25519.Point).SetBytes(pubKey); err != nil {
		return Address{}, fmt.Errorf("invalid stake key: %w", err)
	}
	keyHash := Blake2b224Hash(pubKey)
	return NewAddressFromParts(
		AddressTypeNoneKey,
		networkId,
		nil,
		keyHash.Bytes(),
	)
}
