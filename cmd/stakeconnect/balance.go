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
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/blinklabs-io/stakeconnect/blockfrost"
)

type balanceFlags struct {
	flagset   *flag.FlagSet
	projectId string
}

func newBalanceFlags() *balanceFlags {
	f := &balanceFlags{
		flagset: flag.NewFlagSet("balance", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.projectId,
		"project-id",
		os.Getenv(blockfrost.ProjectIdEnvVar),
		"Blockfrost project ID (defaults to $"+blockfrost.ProjectIdEnvVar+")",
	)
	return f
}

func runBalance(f *globalFlags) {
	balanceFlags := newBalanceFlags()
	err := balanceFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(balanceFlags.flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a stake address\n")
		os.Exit(1)
	}
	if balanceFlags.projectId == "" {
		fmt.Printf("ERROR: you must specify -project-id\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	client := blockfrost.New(
		blockfrost.WithNetwork(f.blockfrostNetwork()),
		blockfrost.WithProjectId(balanceFlags.projectId),
	)
	account, err := client.Account(ctx, balanceFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf(
		"stake address: %s\nactive: %t\ncontrolled: %d lovelace\nrewards: %d lovelace\nwithdrawable: %d lovelace\n",
		account.StakeAddress,
		account.Active,
		account.ControlledAmount,
		account.RewardsSum,
		account.WithdrawableAmount,
	)
	if account.PoolId != nil {
		fmt.Printf("pool: %s\n", *account.PoolId)
	}
}
