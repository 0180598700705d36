// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"

	"github.com/payproto/payproto/util"
)

// ErrUnsupportedAddress is returned when a script cannot be built for an
// address because the address type is not recognized.
var ErrUnsupportedAddress = errors.New("unsupported address type")

// payToPubKeyHashScript creates a new script to pay a transaction output
// to a 20-byte pubkey hash.
func payToPubKeyHashScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, OpDup, OpHash160, OpData20)
	script = append(script, pubKeyHash...)
	script = append(script, OpEqualVerify, OpCheckSig)
	return script
}

// payToScriptHashScript creates a new script to pay a transaction output
// to a 20-byte script hash.
func payToScriptHashScript(scriptHash []byte) []byte {
	script := make([]byte, 0, 23)
	script = append(script, OpHash160, OpData20)
	script = append(script, scriptHash...)
	script = append(script, OpEqual)
	return script
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr util.Address) ([]byte, error) {
	switch addr := addr.(type) {
	case *util.AddressPubKeyHash:
		if addr == nil {
			return nil, errors.Wrap(ErrUnsupportedAddress, "unable to generate "+
				"payment script for nil pointer address")
		}
		return payToPubKeyHashScript(addr.ScriptAddress()), nil

	case *util.AddressScriptHash:
		if addr == nil {
			return nil, errors.Wrap(ErrUnsupportedAddress, "unable to generate "+
				"payment script for nil pointer address")
		}
		return payToScriptHashScript(addr.ScriptAddress()), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedAddress, "unable to generate "+
		"payment script for address %v", addr)
}
