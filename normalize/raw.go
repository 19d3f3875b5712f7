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

package normalize

import (
	"math"
	"reflect"
	"strings"
)

// Kind tags the representation of a RawAddress
type Kind uint8

const (
	KindUnrecognized Kind = iota
	KindBech32
	KindHex
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindBech32:
		return "bech32"
	case KindHex:
		return "hex"
	case KindBytes:
		return "bytes"
	default:
		return "unrecognized"
	}
}

// Bech32Prefixes are the human readable parts accepted as already canonical
var Bech32Prefixes = []string{"addr", "addr_test", "stake"}

// RawAddress is an address value as handed out by a wallet, tagged with its representation
type RawAddress struct {
	kind  Kind
	text  string
	bytes []byte
	value any
}

func (r RawAddress) Kind() Kind {
	return r.kind
}

// Text returns the string for KindBech32, and the hex digits without any 0x prefix for KindHex
func (r RawAddress) Text() string {
	return r.text
}

// Bytes returns the address bytes for KindBytes
func (r RawAddress) Bytes() []byte {
	return r.bytes
}

// Value returns the value that was classified
func (r RawAddress) Value() any {
	return r.value
}

// Classify tags a wallet-provided address value. Every value gets exactly one kind, with
// KindUnrecognized as the catch-all. Checks run in this order:
//
//  1. string with a bech32 prefix (addr, addr_test, stake)
//  2. string of hex digits, optionally 0x-prefixed
//  3. byte slice, or a slice/array of integers in 0..255
//  4. anything else
func Classify(value any) RawAddress {
	ret := RawAddress{value: value}
	if s, ok := value.(string); ok {
		if hasBech32Prefix(s) {
			ret.kind = KindBech32
			ret.text = s
			return ret
		}
		if digits, ok := hexDigits(s); ok {
			ret.kind = KindHex
			ret.text = digits
		}
		return ret
	}
	if b, ok := toBytes(value); ok {
		ret.kind = KindBytes
		ret.bytes = b
	}
	return ret
}

func hasBech32Prefix(s string) bool {
	for _, prefix := range Bech32Prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// hexDigits strips an optional 0x prefix and reports whether the rest is a non-empty run
// of hex digits
func hexDigits(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isHex := (c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'f') ||
			(c >= 'A' && c <= 'F')
		if !isHex {
			return "", false
		}
	}
	return s, true
}

func toBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []byte:
		return v, true
	case []any:
		ret := make([]byte, 0, len(v))
		for _, item := range v {
			b, ok := toByte(reflect.ValueOf(item))
			if !ok {
				return nil, false
			}
			ret = append(ret, b)
		}
		return ret, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	ret := make([]byte, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		b, ok := toByte(rv.Index(i))
		if !ok {
			return nil, false
		}
		ret = append(ret, b)
	}
	return ret, true
}

func toByte(rv reflect.Value) (byte, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 || n > math.MaxUint8 {
			return 0, false
		}
		return byte(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxUint8 {
			return 0, false
		}
		return byte(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f < 0 || f > math.MaxUint8 || f != math.Trunc(f) {
			return 0, false
		}
		return byte(f), true
	default:
		return 0, false
	}
}
