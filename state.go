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

import "github.com/blinklabs-io/stakeconnect/provider"

// State is a step of a single Connect call
type State uint8

const (
	StateIdle State = iota
	StateDetecting
	StateEnabling
	StateVerifyingNetwork
	StateRetrievingAddress
	StateNormalizing
	StateConnected
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:              "Idle",
	StateDetecting:         "Detecting",
	StateEnabling:          "Enabling",
	StateVerifyingNetwork:  "VerifyingNetwork",
	StateRetrievingAddress: "RetrievingAddress",
	StateNormalizing:       "Normalizing",
	StateConnected:         "Connected",
	StateFailed:            "Failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Terminal reports whether no further transitions follow s within a Connect call
func (s State) Terminal() bool {
	return s == StateConnected || s == StateFailed
}

// StateFunc is called on every state transition. err is only set for StateFailed
type StateFunc func(providerId provider.Id, state State, err error)
