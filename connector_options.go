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

package stakeconnect

import (
	"log/slog"

	"github.com/blinklabs-io/stakeconnect/network"
	"github.com/blinklabs-io/stakeconnect/normalize"
	"github.com/blinklabs-io/stakeconnect/provider"
)

// ConnectorOptionFunc is a type that represents functions that modify the Connector config
type ConnectorOptionFunc func(*Connector)

// WithNamespace specifies the host provider namespace. If none is provided, the browser
// namespace is used, which is only available in js/wasm builds
func WithNamespace(ns provider.Namespace) ConnectorOptionFunc {
	return func(c *Connector) {
		c.namespace = ns
		c.namespaceSet = true
	}
}

// WithExpectation specifies the network wallets must be on. If none is provided, it is
// read from the CARDANO_NETWORK environment variable
func WithExpectation(expectation network.Expectation) ConnectorOptionFunc {
	return func(c *Connector) {
		c.expectation = expectation
		c.expectationSet = true
	}
}

// WithCodec specifies the codec used to convert address bytes. The default is address.Codec
func WithCodec(codec normalize.Codec) ConnectorOptionFunc {
	return func(c *Connector) {
		c.codec = codec
	}
}

// WithLogger specifies the logger to use. slog.Default() is used if none is provided
func WithLogger(logger *slog.Logger) ConnectorOptionFunc {
	return func(c *Connector) {
		c.logger = logger
	}
}

// WithStateFunc specifies a function to be notified of state transitions
func WithStateFunc(stateFunc StateFunc) ConnectorOptionFunc {
	return func(c *Connector) {
		c.stateFunc = stateFunc
	}
}
