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
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/stakeconnect/network"
)

type globalFlags struct {
	flagset *flag.FlagSet
	network string
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	defaultNetwork := os.Getenv(network.EnvVar)
	if defaultNetwork == "" {
		defaultNetwork = network.NetworkPreview.Name
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		defaultNetwork,
		"specifies network that wallets must be on (defaults to $"+network.EnvVar+")",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

// expectation resolves -network the same way the library resolves CARDANO_NETWORK: only
// "mainnet" (ignoring case and surrounding whitespace) selects mainnet
func (f *globalFlags) expectation() network.Expectation {
	return network.ParseExpectation(f.network)
}

// blockfrostNetwork returns the network table entry named by -network. Names outside the
// table, or without a Blockfrost endpoint, fall back to the entry matching the expectation
func (f *globalFlags) blockfrostNetwork() network.Network {
	name := strings.ToLower(strings.TrimSpace(f.network))
	if net := network.NetworkByName(name); net.BlockfrostUrl != "" {
		return net
	}
	if f.expectation() == network.Mainnet {
		return network.NetworkMainnet
	}
	return network.NetworkPreview
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{Level: logLevel},
			),
		),
	)

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "providers":
			runProviders(f)
		case "network":
			runNetwork(f)
		case "normalize":
			runNormalize(f)
		case "stake-key":
			runStakeKey(f)
		case "connect":
			runConnect(f)
		case "balance":
			runBalance(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf(
			"You must specify a subcommand (providers, network, normalize, stake-key, connect or balance)\n",
		)
		os.Exit(1)
	}
}
