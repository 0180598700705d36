// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// Params defines the payment-protocol parameters for a bitcoin network.
// A payment request carries the payment-protocol identifier of the network
// it was built for, and a request built for one network must never be
// satisfied on another.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PaymentProtocolID is the identifier carried in the network field of
	// serialized payment details, per BIP70.
	PaymentProtocolID string

	// Address encoding magics.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address

	// SupportedPaymentURLSchemes lists the URL schemes this deployment is
	// able to submit Payment messages over.
	SupportedPaymentURLSchemes []string
}

// MainnetParams defines the payment-protocol parameters for the main
// bitcoin network.
var MainnetParams = Params{
	Name:              "mainnet",
	PaymentProtocolID: "main",

	PubKeyHashAddrID: 0x00,
	ScriptHashAddrID: 0x05,

	SupportedPaymentURLSchemes: []string{"http", "https"},
}

// TestnetParams defines the payment-protocol parameters for the test
// bitcoin network (version 3).
var TestnetParams = Params{
	Name:              "testnet3",
	PaymentProtocolID: "test",

	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,

	SupportedPaymentURLSchemes: []string{"http", "https"},
}

// SimnetParams defines the payment-protocol parameters for the regression
// simulation network. It is used for local tests only and is not routable.
var SimnetParams = Params{
	Name:              "simnet",
	PaymentProtocolID: "regtest",

	PubKeyHashAddrID: 0x3f,
	ScriptHashAddrID: 0x7b,

	SupportedPaymentURLSchemes: []string{"http", "https"},
}
