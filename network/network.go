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

// Package network resolves which Cardano network a deployment expects and
// describes the network IDs reported by wallets.
package network

import "github.com/blinklabs-io/stakeconnect/address"

// Network definitions
var (
	NetworkMainnet = Network{
		Id:            address.AddressNetworkMainnet,
		Name:          "mainnet",
		NetworkMagic:  764824073,
		BlockfrostUrl: "https://cardano-mainnet.blockfrost.io/api/v0",
	}
	NetworkPreprod = Network{
		Id:            address.AddressNetworkTestnet,
		Name:          "preprod",
		NetworkMagic:  1,
		BlockfrostUrl: "https://cardano-preprod.blockfrost.io/api/v0",
	}
	NetworkPreview = Network{
		Id:            address.AddressNetworkTestnet,
		Name:          "preview",
		NetworkMagic:  2,
		BlockfrostUrl: "https://cardano-preview.blockfrost.io/api/v0",
	}
	NetworkSancho = Network{
		Id:           address.AddressNetworkTestnet,
		Name:         "sanchonet",
		NetworkMagic: 4,
	}

	NetworkInvalid = Network{
		Id:           0,
		Name:         "invalid",
		NetworkMagic: 0,
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkPreprod,
	NetworkPreview,
	NetworkSancho,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkById returns the first predefined network with the given ID. Every testnet shares ID 0,
// so this returns preprod for it
func NetworkById(id uint8) Network {
	for _, network := range networks {
		if network.Id == id {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Cardano network
type Network struct {
	Id            uint8 // network ID used for addresses and reported by wallets
	Name          string
	NetworkMagic  uint32
	BlockfrostUrl string
}

func (n Network) String() string {
	return n.Name
}
