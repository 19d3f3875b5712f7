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

package address

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"slices"
	"strings"

	"github.com/blinklabs-io/stakeconnect/cbor"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeKeyKey        = 0b0000
	AddressTypeScriptKey     = 0b0001
	AddressTypeKeyScript     = 0b0010
	AddressTypeScriptScript  = 0b0011
	AddressTypeKeyPointer    = 0b0100
	AddressTypeScriptPointer = 0b0101
	AddressTypeKeyNone       = 0b0110
	AddressTypeScriptNone    = 0b0111
	AddressTypeByron         = 0b1000
	AddressTypeNoneKey       = 0b1110
	AddressTypeNoneScript    = 0b1111

	// Human readable parts
	HrpPayment        = "addr"
	HrpPaymentTestnet = "addr_test"
	HrpStake          = "stake"
	HrpStakeTestnet   = "stake_test"
)

var (
	ErrEmptyAddress   = errors.New("empty address data")
	ErrByronNoBech32  = errors.New("byron addresses have no bech32 form")
	ErrInvalidNetwork = errors.New("invalid network ID")
)

type Address struct {
	addressType      uint8
	networkId        uint8
	paymentPayload   AddressPayload
	stakingPayload   AddressPayload
	extraData        []byte
	byronAddressType uint64
	byronAddressAttr ByronAddressAttributes
}

// NewAddress returns an Address based on the provided bech32/base58 address string.
// A string with mixed case is assumed to be base58 (Byron), anything else bech32
func NewAddress(addr string) (Address, error) {
	var decoded []byte
	if strings.ToLower(addr) != addr {
		decoded = base58.Decode(addr)
	} else {
		_, data, err := bech32.DecodeNoLimit(addr)
		if err != nil {
			return Address{}, err
		}
		decoded, err = bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return Address{}, err
		}
	}
	return NewAddressFromBytes(decoded)
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	var ret Address
	if err := ret.populateFromBytes(addrBytes); err != nil {
		return Address{}, err
	}
	return ret, nil
}

// NewAddressFromParts returns an Address based on the individual parts of the address that are provided
func NewAddressFromParts(
	addrType uint8,
	networkId uint8,
	paymentAddr []byte,
	stakingAddr []byte,
) (Address, error) {
	if networkId != AddressNetworkTestnet &&
		networkId != AddressNetworkMainnet {
		return Address{}, ErrInvalidNetwork
	}
	buf := bytes.NewBuffer(nil)
	header := (addrType << 4) | (networkId & AddressHeaderNetworkMask)
	if err := buf.WriteByte(header); err != nil {
		return Address{}, err
	}
	if _, err := buf.Write(paymentAddr); err != nil {
		return Address{}, err
	}
	if _, err := buf.Write(stakingAddr); err != nil {
		return Address{}, err
	}
	return NewAddressFromBytes(buf.Bytes())
}

func (a *Address) populateFromBytes(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyAddress
	}
	// Extract header info
	header := data[0]
	a.addressType = (header & AddressHeaderTypeMask) >> 4
	a.networkId = header & AddressHeaderNetworkMask
	if a.addressType == AddressTypeByron {
		return a.populateByron(data)
	}
	switch a.addressType {
	case 0b1001, 0b1010, 0b1011, 0b1100, 0b1101:
		return fmt.Errorf("unknown address type: %d", a.addressType)
	}
	// Payment payload
	payload := data[1:]
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeKeyScript, AddressTypeKeyPointer, AddressTypeKeyNone:
		if len(payload) < AddressHashSize {
			return errors.New("invalid payment payload: key hash too small")
		}
		a.paymentPayload = AddressPayloadKeyHash{
			Hash: NewBlake2b224(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeScriptKey, AddressTypeScriptScript, AddressTypeScriptPointer, AddressTypeScriptNone:
		if len(payload) < AddressHashSize {
			return errors.New("invalid payment payload: script hash too small")
		}
		a.paymentPayload = AddressPayloadScriptHash{
			Hash: NewBlake2b224(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	}
	// Staking payload
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeNoneKey:
		if len(payload) < AddressHashSize {
			return errors.New("invalid staking payload: key hash too small")
		}
		a.stakingPayload = AddressPayloadKeyHash{
			Hash: NewBlake2b224(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyScript, AddressTypeScriptScript, AddressTypeNoneScript:
		if len(payload) < AddressHashSize {
			return errors.New("invalid staking payload: script hash too small")
		}
		a.stakingPayload = AddressPayloadScriptHash{
			Hash: NewBlake2b224(payload[0:AddressHashSize]),
		}
		payload = payload[AddressHashSize:]
	case AddressTypeKeyPointer, AddressTypeScriptPointer:
		var tmpPointer AddressPayloadPointer
		n, err := tmpPointer.decode(payload)
		if err != nil {
			return err
		}
		a.stakingPayload = tmpPointer
		payload = payload[len(payload)-n:]
	}
	// Store any extra address data
	// This is needed to handle the case describe in:
	// https://github.com/IntersectMBO/cardano-ledger/issues/2729
	if len(payload) > 0 {
		a.extraData = slices.Clone(payload)
	}
	return nil
}

func (a *Address) populateByron(data []byte) error {
	var rawAddr byronAddress
	if _, err := cbor.Decode(data, &rawAddr); err != nil {
		return err
	}
	payloadBytes, ok := rawAddr.Payload.Content.([]byte)
	if !ok || rawAddr.Payload.Number != cbor.CborTagCbor {
		return errors.New(
			"invalid Byron address data: unexpected payload content",
		)
	}
	if crc32.ChecksumIEEE(payloadBytes) != rawAddr.Checksum {
		return errors.New(
			"invalid Byron address data: checksum does not match",
		)
	}
	var byronAddr byronAddressPayload
	if _, err := cbor.Decode(payloadBytes, &byronAddr); err != nil {
		return err
	}
	if len(byronAddr.Hash) != AddressHashSize {
		return errors.New(
			"invalid Byron address data: hash is not expected length",
		)
	}
	a.networkId = 0
	a.byronAddressType = byronAddr.AddrType
	a.byronAddressAttr = byronAddr.Attr
	a.paymentPayload = AddressPayloadKeyHash{
		Hash: NewBlake2b224(byronAddr.Hash),
	}
	return nil
}

func (a Address) NetworkId() uint {
	if a.addressType == AddressTypeByron {
		// Byron addresses only carry a network attribute on testnets
		if a.byronAddressAttr.Network == nil {
			return AddressNetworkMainnet
		}
		return AddressNetworkTestnet
	}
	return uint(a.networkId)
}

func (a Address) Type() uint8 {
	return a.addressType
}

// IsStake returns true for reward (stake) addresses
func (a Address) IsStake() bool {
	return a.addressType == AddressTypeNoneKey ||
		a.addressType == AddressTypeNoneScript
}

// StakeAddress returns a new Address with only the stake portion. This will return nil if the
// address has no stake key or script hash
func (a Address) StakeAddress() *Address {
	var addrType uint8
	switch a.addressType {
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeNoneKey:
		addrType = AddressTypeNoneKey
	case AddressTypeKeyScript, AddressTypeScriptScript, AddressTypeNoneScript:
		addrType = AddressTypeNoneScript
	default:
		return nil
	}
	return &Address{
		addressType:    addrType,
		networkId:      a.networkId,
		stakingPayload: a.stakingPayload,
	}
}

// StakeKeyHash returns the stake key (or script) hash, or an empty hash when there is none
func (a Address) StakeKeyHash() Blake2b224 {
	switch p := a.stakingPayload.(type) {
	case AddressPayloadKeyHash:
		return p.Hash
	case AddressPayloadScriptHash:
		return p.Hash
	default:
		return Blake2b224{}
	}
}

func (a Address) generateHRP() string {
	var ret string
	if a.IsStake() {
		ret = HrpStake
	} else {
		ret = HrpPayment
	}
	// Add test_ suffix if not mainnet
	if a.networkId != AddressNetworkMainnet {
		ret += "_test"
	}
	return ret
}

// Bytes returns the underlying bytes for the address
func (a Address) Bytes() ([]byte, error) {
	if a.addressType == AddressTypeByron {
		return a.byronBytes()
	}
	buf := bytes.NewBuffer(nil)
	header := (a.addressType << 4) | (a.networkId & AddressHeaderNetworkMask)
	if err := buf.WriteByte(header); err != nil {
		return nil, err
	}
	switch p := a.paymentPayload.(type) {
	case AddressPayloadKeyHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadScriptHash:
		buf.Write(p.Hash.Bytes())
	}
	switch p := a.stakingPayload.(type) {
	case AddressPayloadKeyHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadScriptHash:
		buf.Write(p.Hash.Bytes())
	case AddressPayloadPointer:
		buf.Write(p.encode())
	}
	buf.Write(a.extraData)
	return buf.Bytes(), nil
}

func (a Address) byronBytes() ([]byte, error) {
	tmpPayload := []any{
		a.paymentPayload.(AddressPayloadKeyHash).Hash.Bytes(),
		&a.byronAddressAttr,
		a.byronAddressType,
	}
	rawPayload, err := cbor.Encode(tmpPayload)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to encode Byron address payload: %w",
			err,
		)
	}
	tmpData := []any{
		cbor.Tag{
			Number:  cbor.CborTagCbor,
			Content: rawPayload,
		},
		crc32.ChecksumIEEE(rawPayload),
	}
	ret, err := cbor.Encode(tmpData)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to encode Byron address data: %w",
			err,
		)
	}
	return ret, nil
}

// Bech32 returns the bech32 encoding of the address
func (a Address) Bech32() (string, error) {
	if a.addressType == AddressTypeByron {
		return "", ErrByronNoBech32
	}
	data, err := a.Bytes()
	if err != nil {
		return "", err
	}
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert data to base32: %w", err)
	}
	return bech32.Encode(a.generateHRP(), convData)
}

// String returns the bech32-encoded version of the address, or base58 for Byron addresses
func (a Address) String() string {
	if a.addressType == AddressTypeByron {
		data, err := a.Bytes()
		if err != nil {
			panic(fmt.Sprintf("failed to get address bytes: %v", err))
		}
		return base58.Encode(data)
	}
	encoded, err := a.Bech32()
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

type byronAddress struct {
	cbor.StructAsArray
	Payload  cbor.Tag
	Checksum uint32
}

type byronAddressPayload struct {
	cbor.StructAsArray
	Hash     []byte
	Attr     ByronAddressAttributes
	AddrType uint64
}

type ByronAddressAttributes struct {
	Payload []byte
	Network *uint32
}

func (a *ByronAddressAttributes) UnmarshalCBOR(data []byte) error {
	var tmpData struct {
		Payload    []byte `cbor:"1,keyasint,omitempty"`
		NetworkRaw []byte `cbor:"2,keyasint,omitempty"`
	}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	a.Payload = tmpData.Payload
	if len(tmpData.NetworkRaw) > 0 {
		var tmpNetwork uint32
		if _, err := cbor.Decode(tmpData.NetworkRaw, &tmpNetwork); err != nil {
			return err
		}
		a.Network = &tmpNetwork
	}
	return nil
}

func (a *ByronAddressAttributes) MarshalCBOR() ([]byte, error) {
	tmpData := make(map[int]any)
	if len(a.Payload) > 0 {
		tmpData[1] = a.Payload
	}
	if a.Network != nil {
		networkRaw, err := cbor.Encode(a.Network)
		if err != nil {
			return nil, err
		}
		tmpData[2] = networkRaw
	}
	return cbor.Encode(tmpData)
}

type AddressPayload interface {
	isAddressPayload()
}

type AddressPayloadKeyHash struct {
	Hash Blake2b224
}

func (AddressPayloadKeyHash) isAddressPayload() {}

type AddressPayloadScriptHash struct {
	Hash Blake2b224
}

func (AddressPayloadScriptHash) isAddressPayload() {}

type AddressPayloadPointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

func (AddressPayloadPointer) isAddressPayload() {}

// decode reads the pointer from data and returns the number of unread bytes
func (a *AddressPayloadPointer) decode(data []byte) (int, error) {
	buf := bytes.NewReader(data)
	readVarUint := func() (uint64, error) {
		var ret uint64
		for {
			byt, err := buf.ReadByte()
			if err != nil {
				return 0, fmt.Errorf("invalid pointer payload: %w", err)
			}
			ret = (ret << 7) | uint64(byt&0x7F)
			if (byt & 0x80) == 0 {
				return ret, nil
			}
		}
	}
	var err error
	if a.Slot, err = readVarUint(); err != nil {
		return 0, err
	}
	if a.TxIndex, err = readVarUint(); err != nil {
		return 0, err
	}
	if a.CertIndex, err = readVarUint(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func (a AddressPayloadPointer) encode() []byte {
	writeVarUint := func(buf *bytes.Buffer, val uint64) {
		data := []byte{
			byte(val & 0x7F),
		}
		val /= 128
		for val > 0 {
			data = append(
				data,
				byte((val&0x7F)|0x80),
			)
			val /= 128
		}
		slices.Reverse(data)
		buf.Write(data)
	}
	buf := bytes.NewBuffer(nil)
	writeVarUint(buf, a.Slot)
	writeVarUint(buf, a.TxIndex)
	writeVarUint(buf, a.CertIndex)
	return buf.Bytes()
}
