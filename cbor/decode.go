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

package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			// Address payloads are shallow, anything deeper is garbage
			MaxNestedLevels: 16,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes a single data item into dest and returns the number of bytes consumed
func Decode(dataBytes []byte, dest any) (int, error) {
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(bytes.NewReader(dataBytes))
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// UnwrapByteString returns the contents of data when it consists of exactly one
// CBOR byte string. Some wallets hand out addresses in this form
func UnwrapByteString(data []byte) ([]byte, error) {
	majorType, ok := MajorType(data)
	if !ok {
		return nil, errors.New("empty CBOR data")
	}
	if majorType != CborTypeByteString {
		return nil, fmt.Errorf(
			"expected byte string (0x%x), got 0x%x",
			CborTypeByteString,
			majorType,
		)
	}
	var ret []byte
	n, err := Decode(data, &ret)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf(
			"trailing data after byte string: %d bytes",
			len(data)-n,
		)
	}
	return ret, nil
}
