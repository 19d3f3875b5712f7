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

package provider

import (
	"context"
	"errors"
	"fmt"
)

// Error codes a provider uses to signal that the user declined a request
const (
	ErrorCodeUserRejected1 = 1
	ErrorCodeUserRejected2 = 2
)

// Handle is an injected wallet provider
type Handle interface {
	// Enable asks the provider for access. It may block on user interaction for an
	// unbounded time
	Enable(ctx context.Context) (*Session, error)
}

// Session is the API a provider grants after Enable. Capabilities are optional and a nil
// field means the provider does not offer it
type Session struct {
	// GetNetworkId returns the numeric network ID the wallet is on
	GetNetworkId func(ctx context.Context) (int, error)
	// GetRewardAddresses returns reward addresses in a provider-defined representation
	// (bech32 or hex strings, byte slices, lists of numbers)
	GetRewardAddresses func(ctx context.Context) ([]any, error)
}

// HasNetworkId reports whether the session offers the network ID capability
func (s *Session) HasNetworkId() bool {
	return s != nil && s.GetNetworkId != nil
}

// HasRewardAddresses reports whether the session offers the reward address capability
func (s *Session) HasRewardAddresses() bool {
	return s != nil && s.GetRewardAddresses != nil
}

// APIError is an error reported by a provider
type APIError struct {
	Code int
	Info string
}

func (e APIError) Error() string {
	return fmt.Sprintf("wallet API error (code %d): %s", e.Code, e.Info)
}

// IsUserRejection reports whether err carries a provider error code meaning the user
// declined the request
func IsUserRejection(err error) bool {
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return false
		}
		apiErr = *apiErrPtr
	}
	return apiErr.Code == ErrorCodeUserRejected1 ||
		apiErr.Code == ErrorCodeUserRejected2
}
