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

package address_test

import (
	"testing"

	"github.com/blinklabs-io/stakeconnect/address"
	"github.com/blinklabs-io/stakeconnect/cbor"
	"github.com/blinklabs-io/stakeconnect/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStakeAddress = "stake1uyucxkycrc70349xq3cxzahf4hkytyhr05lntfcg49hqpxsqlrayk"

func stakeAddressBytes(t *testing.T) []byte {
	t.Helper()
	addr, err := address.NewAddress(testStakeAddress)
	require.NoError(t, err)
	ret, err := addr.Bytes()
	require.NoError(t, err)
	return ret
}

func TestCodecBytesToBech32(t *testing.T) {
	var codec address.Codec
	ret, err := codec.BytesToBech32(stakeAddressBytes(t))
	require.NoError(t, err)
	assert.Equal(t, testStakeAddress, ret)
}

func TestCodecCborWrapped(t *testing.T) {
	var codec address.Codec
	wrapped, err := cbor.Encode(stakeAddressBytes(t))
	require.NoError(t, err)
	ret, err := codec.BytesToBech32(wrapped)
	require.NoError(t, err)
	assert.Equal(t, testStakeAddress, ret)
}

func TestCodecErrors(t *testing.T) {
	var codec address.Codec
	testDefs := []struct {
		name     string
		inputHex string
	}{
		{name: "empty", inputHex: ""},
		{name: "truncated", inputHex: "e1337b62"},
		{name: "byron", inputHex: "82d818582483581c5d5e698eba3dd9452add99a1af9461beb0ba61b8bece26e7399878dda1024102001a36d41aba"},
		{name: "wrapped garbage", inputHex: "43010203"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := codec.BytesToBech32(test.DecodeHexString(testDef.inputHex))
			assert.Error(t, err)
		})
	}
}
