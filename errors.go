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
	"errors"
	"fmt"

	"github.com/blinklabs-io/stakeconnect/normalize"
	"github.com/blinklabs-io/stakeconnect/provider"
)

// Sentinel errors for use with errors.Is
var (
	ErrEnvironmentUnavailable = errors.New(
		"wallet provider namespace is not available",
	)
	ErrProviderNotFound          = errors.New("wallet provider not found")
	ErrUserRejected              = errors.New("connection cancelled by user")
	ErrNetworkMismatch           = errors.New("wallet network mismatch")
	ErrNetworkVerificationFailed = errors.New(
		"failed to verify wallet network. Please check your wallet settings",
	)
	ErrNoStakeKeyFound          = errors.New("no stake key found in wallet")
	ErrAddressConversionFailed  = normalize.ErrAddressConversionFailed
	ErrUnknownConnectionFailure = errors.New("failed to connect to wallet")
)

// ErrorKind classifies connection failures
type ErrorKind uint8

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindEnvironmentUnavailable
	ErrorKindProviderNotFound
	ErrorKindUserRejected
	ErrorKindNetworkMismatch
	ErrorKindNetworkVerificationFailed
	ErrorKindNoStakeKeyFound
	ErrorKindAddressConversionFailed
	ErrorKindUnknownConnectionFailure
)

var errorKindNames = map[ErrorKind]string{
	ErrorKindNone:                      "None",
	ErrorKindEnvironmentUnavailable:    "EnvironmentUnavailable",
	ErrorKindProviderNotFound:          "ProviderNotFound",
	ErrorKindUserRejected:              "UserRejected",
	ErrorKindNetworkMismatch:           "NetworkMismatch",
	ErrorKindNetworkVerificationFailed: "NetworkVerificationFailed",
	ErrorKindNoStakeKeyFound:           "NoStakeKeyFound",
	ErrorKindAddressConversionFailed:   "AddressConversionFailed",
	ErrorKindUnknownConnectionFailure:  "UnknownConnectionFailure",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Kind returns the kind of a connection failure. Errors that didn't come from Connect are
// reported as ErrorKindUnknownConnectionFailure, and nil as ErrorKindNone
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrEnvironmentUnavailable):
		return ErrorKindEnvironmentUnavailable
	case errors.Is(err, ErrProviderNotFound):
		return ErrorKindProviderNotFound
	case errors.Is(err, ErrUserRejected):
		return ErrorKindUserRejected
	case errors.Is(err, ErrNetworkMismatch):
		return ErrorKindNetworkMismatch
	case errors.Is(err, ErrNetworkVerificationFailed):
		return ErrorKindNetworkVerificationFailed
	case errors.Is(err, ErrNoStakeKeyFound):
		return ErrorKindNoStakeKeyFound
	case errors.Is(err, ErrAddressConversionFailed):
		return ErrorKindAddressConversionFailed
	default:
		return ErrorKindUnknownConnectionFailure
	}
}

// IsRecoverable reports whether err is a user action (declining the connection) rather than
// a failure. A UI should simply offer the provider picker again
func IsRecoverable(err error) bool {
	return Kind(err) == ErrorKindUserRejected
}

// ProviderNotFoundError indicates that no provider is injected under the requested ID
type ProviderNotFoundError struct {
	ProviderId provider.Id
	Label      string
}

func (e ProviderNotFoundError) Error() string {
	return e.Label + " wallet is not installed"
}

func (ProviderNotFoundError) Is(target error) bool {
	return target == ErrProviderNotFound
}

// UserRejectedError indicates that the user declined a provider request
type UserRejectedError struct {
	ProviderId provider.Id
	Err        error
}

func (e UserRejectedError) Error() string {
	return ErrUserRejected.Error()
}

func (e UserRejectedError) Unwrap() error { return e.Err }

func (UserRejectedError) Is(target error) bool {
	return target == ErrUserRejected
}

// NetworkMismatchError indicates that the wallet is on a different network than expected
type NetworkMismatchError struct {
	ActualId   int
	ExpectedId int
	Actual     string
	Expected   string
}

func (e NetworkMismatchError) Error() string {
	return fmt.Sprintf(
		"Wallet network mismatch. Your wallet is on %q. Please switch your wallet to %q and try again.",
		e.Actual,
		e.Expected,
	)
}

func (NetworkMismatchError) Is(target error) bool {
	return target == ErrNetworkMismatch
}

// NetworkVerificationError indicates that querying the wallet's network failed
type NetworkVerificationError struct {
	Err error
}

func (e NetworkVerificationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNetworkVerificationFailed.Error(), e.Err)
}

func (e NetworkVerificationError) Unwrap() error { return e.Err }

func (NetworkVerificationError) Is(target error) bool {
	return target == ErrNetworkVerificationFailed
}

// UnknownConnectionError wraps a failure that doesn't fit any other kind
type UnknownConnectionError struct {
	Err error
}

func (e UnknownConnectionError) Error() string {
	if e.Err == nil {
		return ErrUnknownConnectionFailure.Error()
	}
	return fmt.Sprintf("%s: %v", ErrUnknownConnectionFailure.Error(), e.Err)
}

func (e UnknownConnectionError) Unwrap() error { return e.Err }

func (UnknownConnectionError) Is(target error) bool {
	return target == ErrUnknownConnectionFailure
}
