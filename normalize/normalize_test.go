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

package normalize_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/blinklabs-io/stakeconnect/address"
	"github.com/blinklabs-io/stakeconnect/internal/test"
	"github.com/blinklabs-io/stakeconnect/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testStakeAddress   = "stake1uyucxkycrc70349xq3cxzahf4hkytyhr05lntfcg49hqpxsqlrayk"
	testPaymentAddress = "addr_test1vpmwd5tk8quxnzxq46h8vztf00xtphrd7zd0al5ur5jsylg3r9v4l"
)

type mockCodec struct {
	mock.Mock
}

func (m *mockCodec) BytesToBech32(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func stakeBytes(t *testing.T) []byte {
	t.Helper()
	addr, err := address.NewAddress(testStakeAddress)
	require.NoError(t, err)
	ret, err := addr.Bytes()
	require.NoError(t, err)
	return ret
}

func TestClassify(t *testing.T) {
	testDefs := []struct {
		name         string
		value        any
		expectedKind normalize.Kind
	}{
		{name: "stake", value: testStakeAddress, expectedKind: normalize.KindBech32},
		{name: "addr_test", value: testPaymentAddress, expectedKind: normalize.KindBech32},
		{name: "addr", value: "addr1v887yfpftg5z660dmf063hj0zv0zh8xjrfkfyd2e07j076cecha5k", expectedKind: normalize.KindBech32},
		{name: "hex", value: "e1337b62cf", expectedKind: normalize.KindHex},
		{name: "hex upper", value: "E1337B62CF", expectedKind: normalize.KindHex},
		{name: "0x hex", value: "0xe1337b62cf", expectedKind: normalize.KindHex},
		{name: "0X hex", value: "0Xe1337b62cf", expectedKind: normalize.KindHex},
		{name: "odd hex", value: "abc", expectedKind: normalize.KindHex},
		{name: "bare 0x", value: "0x", expectedKind: normalize.KindUnrecognized},
		{name: "empty string", value: "", expectedKind: normalize.KindUnrecognized},
		{name: "not hex", value: "hello", expectedKind: normalize.KindUnrecognized},
		{name: "uppercase bech32", value: strings.ToUpper(testStakeAddress), expectedKind: normalize.KindUnrecognized},
		{name: "byte slice", value: []byte{0xe1, 0x33}, expectedKind: normalize.KindBytes},
		{name: "int slice", value: []int{225, 51}, expectedKind: normalize.KindBytes},
		{name: "any numbers", value: []any{225.0, 51}, expectedKind: normalize.KindBytes},
		{name: "byte array", value: [2]byte{0xe1, 0x33}, expectedKind: normalize.KindBytes},
		{name: "out of range", value: []int{256}, expectedKind: normalize.KindUnrecognized},
		{name: "negative", value: []int{-1}, expectedKind: normalize.KindUnrecognized},
		{name: "fraction", value: []any{1.5}, expectedKind: normalize.KindUnrecognized},
		{name: "mixed", value: []any{1, "a"}, expectedKind: normalize.KindUnrecognized},
		{name: "nil", value: nil, expectedKind: normalize.KindUnrecognized},
		{name: "number", value: 42, expectedKind: normalize.KindUnrecognized},
		{name: "map", value: map[string]any{"a": 1}, expectedKind: normalize.KindUnrecognized},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			raw := normalize.Classify(testDef.value)
			assert.Equal(t, testDef.expectedKind, raw.Kind())
		})
	}
}

func TestClassifyStripsHexPrefix(t *testing.T) {
	raw := normalize.Classify("0xE1337b")
	assert.Equal(t, "E1337b", raw.Text())
	raw = normalize.Classify([]any{1.0, 2, uint8(3)})
	assert.Equal(t, []byte{1, 2, 3}, raw.Bytes())
}

func TestNormalizeBech32NoCodecCall(t *testing.T) {
	codec := &mockCodec{}
	n := normalize.New(codec)
	for _, value := range []string{testStakeAddress, testPaymentAddress, "stake_test1whatever"} {
		ret, err := n.Normalize(value)
		require.NoError(t, err)
		assert.Equal(t, value, ret)
	}
	codec.AssertNotCalled(t, "BytesToBech32", mock.Anything)
}

func TestNormalizeBytesCallsCodecOnce(t *testing.T) {
	testDefs := [][]byte{
		{0x00},
		{0xe1, 0x01, 0x02},
		bytes.Repeat([]byte{0xab}, 29),
	}
	for _, data := range testDefs {
		codec := &mockCodec{}
		codec.On("BytesToBech32", data).Return("codec-output", nil).Once()
		n := normalize.New(codec)
		ret, err := n.Normalize(data)
		require.NoError(t, err)
		assert.Equal(t, "codec-output", ret)
		codec.AssertNumberOfCalls(t, "BytesToBech32", 1)
		codec.AssertExpectations(t)
	}
}

func TestNormalizeHexAndBytesConverge(t *testing.T) {
	data := stakeBytes(t)
	n := normalize.New(address.Codec{})
	fromBytes, err := n.Normalize(data)
	require.NoError(t, err)
	assert.Equal(t, testStakeAddress, fromBytes)
	for _, value := range []any{
		test.EncodeHex(data),
		"0x" + test.EncodeHex(data),
		strings.ToUpper(test.EncodeHex(data)),
		test.ByteValues(data),
	} {
		ret, err := n.Normalize(value)
		require.NoError(t, err)
		assert.Equal(t, fromBytes, ret)
	}
}

func TestNormalizeCborWrapped(t *testing.T) {
	// 0x581d is the CBOR byte string header for 29 bytes
	wrapped := append([]byte{0x58, 0x1d}, stakeBytes(t)...)
	ret, err := normalize.New(address.Codec{}).Normalize(test.EncodeHex(wrapped))
	require.NoError(t, err)
	assert.Equal(t, testStakeAddress, ret)
}

func TestNormalizeConversionFailure(t *testing.T) {
	codecErr := errors.New("malformed address")
	codec := &mockCodec{}
	codec.On("BytesToBech32", mock.Anything).Return("", codecErr)
	n := normalize.New(codec)
	_, err := n.Normalize([]byte{0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrAddressConversionFailed)
	assert.ErrorIs(t, err, codecErr)
	var convErr normalize.AddressConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, normalize.KindBytes, convErr.Kind)
	codec.AssertNumberOfCalls(t, "BytesToBech32", 1)
}

func TestNormalizeOddHex(t *testing.T) {
	codec := &mockCodec{}
	n := normalize.New(codec)
	_, err := n.Normalize("0xabc")
	assert.ErrorIs(t, err, normalize.ErrAddressConversionFailed)
	codec.AssertNotCalled(t, "BytesToBech32", mock.Anything)
}

func TestNormalizeRealCodecFailure(t *testing.T) {
	_, err := normalize.New(address.Codec{}).Normalize("e1337b")
	assert.ErrorIs(t, err, normalize.ErrAddressConversionFailed)
}

func TestNormalizeUnrecognizedFallback(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	codec := &mockCodec{}
	n := normalize.New(codec, normalize.WithLogger(logger))
	testDefs := []struct {
		value    any
		expected string
	}{
		{value: "hello", expected: "hello"},
		{value: 42, expected: "42"},
		{value: nil, expected: "<nil>"},
	}
	for _, testDef := range testDefs {
		ret, err := n.Normalize(testDef.value)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, ret)
	}
	assert.Contains(t, logBuf.String(), "unknown address format")
	assert.Contains(t, logBuf.String(), "level=WARN")
	codec.AssertNotCalled(t, "BytesToBech32", mock.Anything)
}
