// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/payproto/payproto/netparams"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address cannot be
	// decoded as a known address type.
	ErrUnknownAddressType = errors.New("unknown address type")
)

// Address is an interface type for any type of destination a transaction
// output may spend to. This includes pay-to-pubkey-hash (P2PKH) and
// pay-to-script-hash (P2SH) addresses.
type Address interface {
	// EncodeAddress returns the string encoding of the address.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used when
	// inserting the address into a script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed bitcoin network.
	IsForNet(params *netparams.Params) bool
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid encoding for a known address type on the
// passed network.
func DecodeAddress(addr string, params *netparams.Params) (Address, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, errors.Errorf("decoded address is of unknown format: %s", err)
	}
	if len(decoded) != ripemd160Size {
		return nil, errors.Errorf("decoded address is of unknown size %d", len(decoded))
	}

	switch netID {
	case params.PubKeyHashAddrID:
		return newAddressPubKeyHash(decoded, netID)
	case params.ScriptHashAddrID:
		return newAddressScriptHashFromHash(decoded, netID)
	default:
		return nil, ErrUnknownAddressType
	}
}

const ripemd160Size = 20

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash. pkHash must
// be 20 bytes.
func NewAddressPubKeyHash(pkHash []byte, params *netparams.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, params.PubKeyHashAddrID)
}

func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}
	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address. Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash. Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-pubkey-hash address is
// associated with the passed bitcoin network.
func (a *AddressPubKeyHash) IsForNet(params *netparams.Params) bool {
	return a.netID == params.PubKeyHashAddrID
}

// String returns a human-readable string for the pay-to-pubkey-hash
// address. This is equivalent to calling EncodeAddress, but is provided
// so the type can be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [ripemd160Size]byte
	netID byte
}

// NewAddressScriptHash returns a new AddressScriptHash for the given
// redemption script.
func NewAddressScriptHash(serializedScript []byte, params *netparams.Params) (*AddressScriptHash, error) {
	return newAddressScriptHashFromHash(Hash160(serializedScript), params.ScriptHashAddrID)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash. scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, params *netparams.Params) (*AddressScriptHash, error) {
	return newAddressScriptHashFromHash(scriptHash, params.ScriptHashAddrID)
}

func newAddressScriptHashFromHash(scriptHash []byte, netID byte) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160Size {
		return nil, errors.New("scriptHash must be 20 bytes")
	}
	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash
// address. Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a script hash. Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-script-hash address is
// associated with the passed bitcoin network.
func (a *AddressScriptHash) IsForNet(params *netparams.Params) bool {
	return a.netID == params.ScriptHashAddrID
}

// String returns a human-readable string for the pay-to-script-hash
// address. This is equivalent to calling EncodeAddress, but is provided
// so the type can be used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}
