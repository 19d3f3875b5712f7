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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickyNamespace struct{}

func (panickyNamespace) Lookup(Id) (Handle, bool) {
	panic("host namespace went away")
}

func TestKnownProviders(t *testing.T) {
	providers := KnownProviders()
	require.Len(t, providers, 3)
	assert.Equal(t, Descriptor{Id: IdYoroi, Label: "Yoroi"}, providers[0])
	assert.Equal(t, Descriptor{Id: IdLace, Label: "Lace"}, providers[1])
	assert.Equal(t, Descriptor{Id: IdEternl, Label: "Eternl"}, providers[2])
	// Mutating the returned slice must not affect the catalog
	providers[0].Label = "changed"
	assert.Equal(t, "Yoroi", KnownProviders()[0].Label)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Eternl", Label(IdEternl))
	assert.Equal(t, "nami", Label(Id("nami")))
	_, ok := DescriptorById(Id("nami"))
	assert.False(t, ok)
}

func TestIsPresent(t *testing.T) {
	assert.False(t, IsPresent(nil, IdLace))
	assert.False(t, IsPresent(panickyNamespace{}, IdLace))
	ns := NewStaticNamespace()
	assert.False(t, IsPresent(ns, IdLace))
	ns.Set(IdLace, &StaticHandle{})
	assert.True(t, IsPresent(ns, IdLace))
	ns.Remove(IdLace)
	assert.False(t, IsPresent(ns, IdLace))
	// A key holding nil is not a provider
	ns.Set(IdYoroi, nil)
	assert.False(t, IsPresent(ns, IdYoroi))
	ns.Set(IdEternl, (*StaticHandle)(nil))
	assert.False(t, IsPresent(ns, IdEternl))
	_, ok := ns.Lookup(IdEternl)
	assert.False(t, ok)
}

func TestPresentProviders(t *testing.T) {
	ns := NewStaticNamespace()
	assert.Empty(t, PresentProviders(ns))
	assert.Empty(t, PresentProviders(nil))
	ns.Set(IdEternl, &StaticHandle{})
	ns.Set(IdYoroi, &StaticHandle{})
	ns.Set(Id("nami"), &StaticHandle{})
	assert.Equal(
		t,
		[]Descriptor{
			{Id: IdYoroi, Label: "Yoroi"},
			{Id: IdEternl, Label: "Eternl"},
		},
		PresentProviders(ns),
	)
}

func TestIsUserRejection(t *testing.T) {
	testDefs := []struct {
		err      error
		expected bool
	}{
		{err: APIError{Code: 1, Info: "declined"}, expected: true},
		{err: APIError{Code: 2, Info: "declined"}, expected: true},
		{err: &APIError{Code: 2}, expected: true},
		{err: fmt.Errorf("enable: %w", APIError{Code: 1}), expected: true},
		{err: APIError{Code: -3, Info: "refused"}, expected: false},
		{err: APIError{Code: 3}, expected: false},
		{err: errors.New("code 1"), expected: false},
		{err: nil, expected: false},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, IsUserRejection(testDef.err), "error: %v", testDef.err)
	}
}

func TestStaticHandle(t *testing.T) {
	session, err := (&StaticHandle{}).Enable(context.Background())
	require.NoError(t, err)
	assert.False(t, session.HasNetworkId())
	assert.False(t, session.HasRewardAddresses())
	_, err = (&StaticHandle{EnableErr: APIError{Code: 2}}).Enable(context.Background())
	assert.True(t, IsUserRejection(err))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&StaticHandle{}).Enable(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	var nilHandle *StaticHandle
	_, err = nilHandle.Enable(context.Background())
	assert.ErrorIs(t, err, ErrNilHandle)
}

func TestLoadFixture(t *testing.T) {
	doc := `
providers:
  - id: lace
    networkId: 1
    rewardAddresses:
      - "e1337b62cfff6403a06a3acbc34f8c46003c69fe79a3628cefa9c47251"
      - [225, 51, 123]
  - id: eternl
  - id: yoroi
    enableError:
      code: 2
      info: user declined
`
	ns, err := LoadFixture(strings.NewReader(doc))
	require.NoError(t, err)
	ctx := context.Background()

	handle, ok := ns.Lookup(IdLace)
	require.True(t, ok)
	session, err := handle.Enable(ctx)
	require.NoError(t, err)
	require.True(t, session.HasNetworkId())
	networkId, err := session.GetNetworkId(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, networkId)
	require.True(t, session.HasRewardAddresses())
	addrs, err := session.GetRewardAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	assert.Equal(t, "e1337b62cfff6403a06a3acbc34f8c46003c69fe79a3628cefa9c47251", addrs[0])
	assert.Equal(t, []any{225, 51, 123}, addrs[1])

	handle, ok = ns.Lookup(IdEternl)
	require.True(t, ok)
	session, err = handle.Enable(ctx)
	require.NoError(t, err)
	assert.False(t, session.HasNetworkId())
	assert.False(t, session.HasRewardAddresses())

	handle, ok = ns.Lookup(IdYoroi)
	require.True(t, ok)
	_, err = handle.Enable(ctx)
	assert.True(t, IsUserRejection(err))
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := LoadFixture(strings.NewReader("providers:\n  - networkId: 0\n"))
	assert.Error(t, err)
	_, err = LoadFixture(strings.NewReader("providers:\n  - id: lace\n    bogus: true\n"))
	assert.Error(t, err)
	ns, err := LoadFixture(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, PresentProviders(ns))
}
