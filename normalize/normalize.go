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

// Package normalize turns the address values wallets hand out into canonical
// bech32 strings.
package normalize

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
)

// Codec converts raw address bytes into their bech32 form
type Codec interface {
	BytesToBech32(data []byte) (string, error)
}

var ErrAddressConversionFailed = errors.New(
	"failed to convert address bytes to bech32 format",
)

// AddressConversionError is returned when address bytes could not be converted
type AddressConversionError struct {
	Kind Kind
	Err  error
}

func (e AddressConversionError) Error() string {
	return fmt.Sprintf(
		"%s (%s): %v",
		ErrAddressConversionFailed.Error(),
		e.Kind,
		e.Err,
	)
}

func (e AddressConversionError) Unwrap() error { return e.Err }

func (AddressConversionError) Is(target error) bool {
	return target == ErrAddressConversionFailed
}

// Normalizer drives address values through a Codec
type Normalizer struct {
	codec  Codec
	logger *slog.Logger
}

// NormalizerOptionFunc is a type that represents functions that modify the Normalizer config
type NormalizerOptionFunc func(*Normalizer)

// WithLogger specifies the logger to use. slog.Default() is used if none is provided
func WithLogger(logger *slog.Logger) NormalizerOptionFunc {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

func New(codec Codec, opts ...NormalizerOptionFunc) *Normalizer {
	n := &Normalizer{
		codec: codec,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

// Normalize classifies value and converts it to a canonical bech32 string
func (n *Normalizer) Normalize(value any) (string, error) {
	return n.NormalizeRaw(Classify(value))
}

// NormalizeRaw converts a classified address value to a canonical bech32 string.
//
// Unrecognized values are returned in their string form with a warning rather than
// failing. This keeps wallets with unusual encodings usable but may hide a genuine
// incompatibility, so callers should not treat it as a verified result
func (n *Normalizer) NormalizeRaw(raw RawAddress) (string, error) {
	switch raw.Kind() {
	case KindBech32:
		return raw.Text(), nil
	case KindHex:
		data, err := hex.DecodeString(raw.Text())
		if err != nil {
			return "", AddressConversionError{Kind: KindHex, Err: err}
		}
		return n.convert(KindHex, data)
	case KindBytes:
		return n.convert(KindBytes, raw.Bytes())
	default:
		ret := fmt.Sprint(raw.Value())
		n.logger.Warn(
			"unknown address format, using it as-is",
			"type", fmt.Sprintf("%T", raw.Value()),
			"value", ret,
		)
		return ret, nil
	}
}

func (n *Normalizer) convert(kind Kind, data []byte) (string, error) {
	if n.codec == nil {
		return "", AddressConversionError{Kind: kind, Err: errors.New("no address codec")}
	}
	ret, err := n.codec.BytesToBech32(data)
	if err != nil {
		return "", AddressConversionError{Kind: kind, Err: err}
	}
	return ret, nil
}
