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

// Package stakeconnect obtains a canonical bech32 stake address from a Cardano
// wallet provider injected into the host environment.
//
// A Connect call runs the whole handshake: find the provider, ask it for access,
// check that it is on the expected network, fetch its reward address and
// normalize that into bech32. Nothing is cached between calls and nothing is
// retried, so a caller wanting another attempt simply calls Connect again.
//
// Connect does not serialize concurrent calls. Injected providers are shared
// state owned by the host, so callers should run one connection attempt at a
// time (for example by disabling a wallet picker while one is in flight).
package stakeconnect

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blinklabs-io/stakeconnect/address"
	"github.com/blinklabs-io/stakeconnect/network"
	"github.com/blinklabs-io/stakeconnect/normalize"
	"github.com/blinklabs-io/stakeconnect/provider"
	"github.com/blinklabs-io/stakeconnect/provider/jsbridge"
)

// StakeAddress is a bech32 reward address, as returned by Connect
type StakeAddress string

func (s StakeAddress) String() string {
	return string(s)
}

// Connector runs the wallet connection handshake
type Connector struct {
	namespace      provider.Namespace
	namespaceSet   bool
	expectation    network.Expectation
	expectationSet bool
	codec          normalize.Codec
	normalizer     *normalize.Normalizer
	logger         *slog.Logger
	stateFunc      StateFunc
}

// NewConnector returns a new Connector with the specified options
func NewConnector(options ...ConnectorOptionFunc) *Connector {
	c := &Connector{}
	for _, option := range options {
		option(c)
	}
	if !c.namespaceSet {
		c.namespace = jsbridge.Namespace()
	}
	if !c.expectationSet {
		c.expectation = network.ExpectationFromEnv()
	}
	if c.codec == nil {
		c.codec = address.Codec{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.normalizer = normalize.New(
		c.codec,
		normalize.WithLogger(c.logger),
	)
	return c
}

// Expectation returns the network the connector requires wallets to be on
func (c *Connector) Expectation() network.Expectation {
	return c.expectation
}

// Providers returns the supported providers currently present in the host namespace
func (c *Connector) Providers() []provider.Descriptor {
	return provider.PresentProviders(c.namespace)
}

// Connect performs the connection handshake with the provider injected under providerId and
// returns its stake address. Provider calls may wait on user interaction indefinitely; ctx is
// passed to each of them and is the only way to give up early
func (c *Connector) Connect(ctx context.Context, providerId provider.Id) (StakeAddress, error) {
	logger := c.logger.With("provider", string(providerId))
	c.setState(logger, providerId, StateIdle, nil)

	// Detect
	c.setState(logger, providerId, StateDetecting, nil)
	if c.namespace == nil {
		return c.fail(logger, providerId, ErrEnvironmentUnavailable)
	}
	if !provider.IsPresent(c.namespace, providerId) {
		return c.fail(
			logger,
			providerId,
			ProviderNotFoundError{
				ProviderId: providerId,
				Label:      provider.Label(providerId),
			},
		)
	}
	handle, ok := c.namespace.Lookup(providerId)
	if !ok || handle == nil {
		// Removed between the presence check and the lookup
		return c.fail(
			logger,
			providerId,
			ProviderNotFoundError{
				ProviderId: providerId,
				Label:      provider.Label(providerId),
			},
		)
	}

	// Enable
	c.setState(logger, providerId, StateEnabling, nil)
	session, err := handle.Enable(ctx)
	if err != nil {
		return c.fail(logger, providerId, providerError(providerId, err))
	}
	if session == nil {
		session = &provider.Session{}
	}

	// Verify network
	if session.HasNetworkId() {
		c.setState(logger, providerId, StateVerifyingNetwork, nil)
		if err := c.verifyNetwork(ctx, providerId, session); err != nil {
			return c.fail(logger, providerId, err)
		}
	} else {
		logger.Debug("provider has no network ID capability, skipping network check")
	}

	// Retrieve stake address
	c.setState(logger, providerId, StateRetrievingAddress, nil)
	rawAddr, err := c.rewardAddress(ctx, logger, providerId, session)
	if err != nil {
		return c.fail(logger, providerId, err)
	}

	// Normalize
	c.setState(logger, providerId, StateNormalizing, nil)
	stakeAddr, err := c.normalizer.Normalize(rawAddr)
	if err != nil {
		return c.fail(logger, providerId, err)
	}

	c.setState(logger, providerId, StateConnected, nil)
	return StakeAddress(stakeAddr), nil
}

func (c *Connector) verifyNetwork(
	ctx context.Context,
	providerId provider.Id,
	session *provider.Session,
) error {
	networkId, err := session.GetNetworkId(ctx)
	if err != nil {
		if provider.IsUserRejection(err) {
			return UserRejectedError{ProviderId: providerId, Err: err}
		}
		return NetworkVerificationError{Err: err}
	}
	expectedId := int(c.expectation.NetworkId())
	if networkId != expectedId {
		return NetworkMismatchError{
			ActualId:   networkId,
			ExpectedId: expectedId,
			Actual:     network.DescribeNetwork(networkId),
			Expected:   network.DescribeNetwork(expectedId),
		}
	}
	return nil
}

// rewardAddress returns the first reward address the session reports. Providers define
// the order when there are several, and the first one is used as-is
func (c *Connector) rewardAddress(
	ctx context.Context,
	logger *slog.Logger,
	providerId provider.Id,
	session *provider.Session,
) (any, error) {
	if !session.HasRewardAddresses() {
		return nil, ErrNoStakeKeyFound
	}
	addrs, err := session.GetRewardAddresses(ctx)
	if err != nil {
		return nil, providerError(providerId, err)
	}
	if len(addrs) == 0 {
		return nil, ErrNoStakeKeyFound
	}
	if len(addrs) > 1 {
		logger.Debug(
			"provider returned multiple reward addresses, using the first",
			"count", len(addrs),
		)
	}
	first := addrs[0]
	if first == nil {
		return nil, ErrNoStakeKeyFound
	}
	if s, ok := first.(string); ok && s == "" {
		return nil, ErrNoStakeKeyFound
	}
	return first, nil
}

// providerError maps an error returned by a provider capability
func providerError(providerId provider.Id, err error) error {
	if provider.IsUserRejection(err) {
		return UserRejectedError{ProviderId: providerId, Err: err}
	}
	return UnknownConnectionError{Err: err}
}

func (c *Connector) fail(
	logger *slog.Logger,
	providerId provider.Id,
	err error,
) (StakeAddress, error) {
	if Kind(err) == ErrorKindUnknownConnectionFailure &&
		!errors.Is(err, ErrUnknownConnectionFailure) {
		err = UnknownConnectionError{Err: err}
	}
	c.setState(logger, providerId, StateFailed, err)
	return "", err
}

func (c *Connector) setState(
	logger *slog.Logger,
	providerId provider.Id,
	state State,
	err error,
) {
	if err != nil {
		logger.Debug(
			"wallet connection state changed",
			"state", state.String(),
			"kind", Kind(err).String(),
			"error", err,
		)
	} else {
		logger.Debug("wallet connection state changed", "state", state.String())
	}
	if c.stateFunc != nil {
		c.stateFunc(providerId, state, err)
	}
}
