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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/blinklabs-io/stakeconnect/address"
	"github.com/blinklabs-io/stakeconnect/network"
	"github.com/blinklabs-io/stakeconnect/normalize"
)

func runNetwork(f *globalFlags) {
	expectation := f.expectation()
	expectedId := int(expectation.NetworkId())
	fmt.Printf(
		"expected: %s (network ID %d)\n",
		network.DescribeNetwork(expectedId),
		expectedId,
	)
	if len(f.flagset.Args()) < 2 {
		return
	}
	walletId, err := strconv.Atoi(f.flagset.Arg(1))
	if err != nil {
		fmt.Printf("ERROR: invalid network ID: %s\n", f.flagset.Arg(1))
		os.Exit(1)
	}
	if walletId != expectedId {
		fmt.Printf(
			"mismatch: wallet is on %s\n",
			network.DescribeNetwork(walletId),
		)
		os.Exit(1)
	}
	fmt.Printf("match\n")
}

func runNormalize(f *globalFlags) {
	if len(f.flagset.Args()) < 2 {
		fmt.Printf("ERROR: you must specify an address value\n")
		os.Exit(1)
	}
	raw := normalize.Classify(f.flagset.Arg(1))
	n := normalize.New(address.Codec{})
	stakeAddr, err := n.NormalizeRaw(raw)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s (%s)\n", stakeAddr, raw.Kind())
	if stake, keyHash, ok := stakePart(stakeAddr); ok {
		fmt.Printf("stake address: %s\nstake credential: %s\n", stake, keyHash)
	}
}

// stakePart returns the stake address and stake credential hash of a base address
func stakePart(addrStr string) (string, string, bool) {
	addr, err := address.NewAddress(addrStr)
	if err != nil || addr.IsStake() {
		return "", "", false
	}
	stakeAddr := addr.StakeAddress()
	if stakeAddr == nil {
		return "", "", false
	}
	return stakeAddr.String(), addr.StakeKeyHash().String(), true
}

func runStakeKey(f *globalFlags) {
	if len(f.flagset.Args()) < 2 {
		fmt.Printf("ERROR: you must specify a hex-encoded stake public key\n")
		os.Exit(1)
	}
	pubKey, err := hex.DecodeString(f.flagset.Arg(1))
	if err != nil {
		fmt.Printf("ERROR: invalid hex: %s\n", err)
		os.Exit(1)
	}
	addr, err := address.NewStakeAddressFromKey(
		f.expectation().NetworkId(),
		pubKey,
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", addr.String())
}
