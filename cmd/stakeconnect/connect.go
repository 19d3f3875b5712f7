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

	"github.com/blinklabs-io/stakeconnect"
	"github.com/blinklabs-io/stakeconnect/provider"
)

type fixtureFlags struct {
	flagset *flag.FlagSet
	fixture string
}

func newFixtureFlags(name string) *fixtureFlags {
	f := &fixtureFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.fixture,
		"fixture",
		"",
		"YAML file describing the simulated wallet providers",
	)
	return f
}

// parse parses the subcommand args and loads the fixture namespace
func (f *fixtureFlags) parse(args []string) *provider.StaticNamespace {
	if err := f.flagset.Parse(args); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if f.fixture == "" {
		fmt.Printf("ERROR: you must specify -fixture\n")
		os.Exit(1)
	}
	ns, err := provider.LoadFixtureFile(f.fixture)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	return ns
}

func runProviders(f *globalFlags) {
	providersFlags := newFixtureFlags("providers")
	ns := providersFlags.parse(f.flagset.Args()[1:])
	for _, desc := range provider.KnownProviders() {
		status := "not installed"
		if provider.IsPresent(ns, desc.Id) {
			status = "installed"
		}
		fmt.Printf("%-8s %-8s %s\n", desc.Id, desc.Label, status)
	}
}

func runConnect(f *globalFlags) {
	connectFlags := newFixtureFlags("connect")
	ns := connectFlags.parse(f.flagset.Args()[1:])
	if len(connectFlags.flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a provider\n")
		os.Exit(1)
	}
	providerId := provider.Id(connectFlags.flagset.Arg(0))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	c := stakeconnect.NewConnector(
		stakeconnect.WithNamespace(ns),
		stakeconnect.WithExpectation(f.expectation()),
	)
	stakeAddr, err := c.Connect(ctx, providerId)
	if err != nil {
		fmt.Printf("ERROR (%s): %s\n", stakeconnect.Kind(err), err)
		if stakeconnect.IsRecoverable(err) {
			// Declining is not a failure
			return
		}
		os.Exit(1)
	}
	fmt.Printf("%s\n", stakeAddr)
}
