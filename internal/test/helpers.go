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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace and an optional 0x prefix
	hexData = strings.TrimPrefix(strings.TrimSpace(hexData), "0x")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// ByteValues converts a byte slice into the []any of numbers that a wallet returning
// a JSON/JS array would produce
func ByteValues(data []byte) []any {
	ret := make([]any, 0, len(data))
	for _, b := range data {
		ret = append(ret, float64(b))
	}
	return ret
}

// EncodeHex is the inverse of DecodeHexString
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}
