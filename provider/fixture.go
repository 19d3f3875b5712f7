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
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes a set of simulated wallets, for exercising a UI or the CLI without a
// browser. Example:
//
//	providers:
//	  - id: lace
//	    networkId: 0
//	    rewardAddresses:
//	      - "e1337b62cfff6403a06a3acbc34f8c46003c69fe79a3628cefa9c47251"
//	  - id: yoroi
//	    enableError:
//	      code: 2
//	      info: user declined
//
// Omitting networkId or rewardAddresses leaves that capability out of the session
type Fixture struct {
	Providers []FixtureProvider `yaml:"providers"`
}

type FixtureProvider struct {
	Id              Id               `yaml:"id"`
	NetworkId       *int             `yaml:"networkId,omitempty"`
	RewardAddresses *[]any           `yaml:"rewardAddresses,omitempty"`
	EnableError     *FixtureAPIError `yaml:"enableError,omitempty"`
}

type FixtureAPIError struct {
	Code int    `yaml:"code"`
	Info string `yaml:"info"`
}

// LoadFixture builds a namespace from a YAML fixture document
func LoadFixture(r io.Reader) (*StaticNamespace, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return NewStaticNamespace(), nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	ns := NewStaticNamespace()
	for idx, p := range fixture.Providers {
		if p.Id == "" {
			return nil, fmt.Errorf("fixture provider %d: missing id", idx)
		}
		ns.Set(p.Id, p.handle())
	}
	return ns, nil
}

// LoadFixtureFile builds a namespace from the YAML fixture at path
func LoadFixtureFile(path string) (*StaticNamespace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFixture(f)
}

func (p FixtureProvider) handle() *StaticHandle {
	if p.EnableError != nil {
		return &StaticHandle{
			EnableErr: APIError{
				Code: p.EnableError.Code,
				Info: p.EnableError.Info,
			},
		}
	}
	session := &Session{}
	if p.NetworkId != nil {
		networkId := *p.NetworkId
		session.GetNetworkId = func(ctx context.Context) (int, error) {
			return networkId, ctx.Err()
		}
	}
	if p.RewardAddresses != nil {
		addrs := *p.RewardAddresses
		session.GetRewardAddresses = func(ctx context.Context) ([]any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return addrs, nil
		}
	}
	return &StaticHandle{Session: session}
}
