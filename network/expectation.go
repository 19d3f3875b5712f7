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

package network

import (
	"os"
	"strings"

	"github.com/blinklabs-io/stakeconnect/address"
)

// EnvVar names the environment variable selecting the expected network
const EnvVar = "CARDANO_NETWORK"

const (
	LabelMainnet = "mainnet"
	LabelTestnet = "preview testnet"
)

// Expectation is the network a deployment expects wallets to be on
type Expectation uint8

const (
	Testnet Expectation = iota
	Mainnet
)

// ParseExpectation resolves a configuration value. Only "mainnet" (ignoring case and
// surrounding whitespace) selects Mainnet
func ParseExpectation(config string) Expectation {
	if strings.ToLower(strings.TrimSpace(config)) == NetworkMainnet.Name {
		return Mainnet
	}
	return Testnet
}

// ExpectationFromEnv resolves the expectation from the CARDANO_NETWORK environment variable
func ExpectationFromEnv() Expectation {
	return ParseExpectation(os.Getenv(EnvVar))
}

// NetworkId returns the network ID a wallet must report
func (e Expectation) NetworkId() uint8 {
	if e == Mainnet {
		return address.AddressNetworkMainnet
	}
	return address.AddressNetworkTestnet
}

func (e Expectation) String() string {
	return DescribeNetwork(int(e.NetworkId()))
}

// ExpectedNetworkId returns 1 when config selects mainnet and 0 for anything else, including
// an empty value
func ExpectedNetworkId(config string) uint8 {
	return ParseExpectation(config).NetworkId()
}

// DescribeNetwork returns a human readable label for a wallet-reported network ID
func DescribeNetwork(id int) string {
	if id == address.AddressNetworkMainnet {
		return LabelMainnet
	}
	return LabelTestnet
}
