// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcutil/base58"

	"github.com/payproto/payproto/netparams"
)

func TestAddresses(t *testing.T) {
	mustHex := func(s string) []byte {
		b, err := hex.DecodeString(s)
		if err != nil {
			t.Fatalf("invalid hex in test source: %v", err)
		}
		return b
	}

	tests := []struct {
		name    string
		addr    string
		encoded string
		valid   bool
		f       func() (Address, error)
		params  *netparams.Params
	}{
		// Positive P2PKH tests.
		{
			name:    "mainnet p2pkh",
			addr:    "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			encoded: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			valid:   true,
			f: func() (Address, error) {
				pkHash := mustHex("62e907b15cbf27d5425399ebf6f0fb50ebb88f18")
				return NewAddressPubKeyHash(pkHash, &netparams.MainnetParams)
			},
			params: &netparams.MainnetParams,
		},
		{
			name:    "testnet p2pkh",
			addr:    "mrX9vMRYLfVy1BnZbc5gZjuyaqH3ZW2ZHz",
			encoded: "mrX9vMRYLfVy1BnZbc5gZjuyaqH3ZW2ZHz",
			valid:   true,
			f: func() (Address, error) {
				pkHash := mustHex("78b316a08647d5b77283e512d3603f1f1c8de68f")
				return NewAddressPubKeyHash(pkHash, &netparams.TestnetParams)
			},
			params: &netparams.TestnetParams,
		},

		// Positive P2SH tests.
		{
			name:    "mainnet p2sh",
			addr:    "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
			encoded: "3QJmV3qfvL9SuYo34YihAf3sRCW3qSinyC",
			valid:   true,
			f: func() (Address, error) {
				scriptHash := mustHex("f815b036d9bbbce5e9f2a00abd1bf3dc91e95510")
				return NewAddressScriptHashFromHash(scriptHash, &netparams.MainnetParams)
			},
			params: &netparams.MainnetParams,
		},

		// Negative tests.
		{
			name:   "p2pkh wrong hash length",
			addr:   "",
			valid:  false,
			f: func() (Address, error) {
				pkHash := mustHex("000ef030107fd26e0b6bf40512bca2ceb1dd80adaa")
				return NewAddressPubKeyHash(pkHash, &netparams.MainnetParams)
			},
			params: &netparams.MainnetParams,
		},
		{
			name:   "p2sh wrong hash length",
			addr:   "",
			valid:  false,
			f: func() (Address, error) {
				scriptHash := mustHex("00f815b036d9bbbce5e9f2a00abd1bf3dc91e95510")
				return NewAddressScriptHashFromHash(scriptHash, &netparams.MainnetParams)
			},
			params: &netparams.MainnetParams,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		// Decode addr and compare error against valid.
		decoded, err := DecodeAddress(test.addr, test.params)
		if (err == nil) != test.valid {
			t.Errorf("%v: decoding test failed: %v", test.name, err)
			continue
		}

		if err == nil {
			// Ensure the stringer returns the same address as the
			// original.
			if decodedStringer, ok := decoded.(interface{ String() string }); ok {
				if test.addr != decodedStringer.String() {
					t.Errorf("%v: String on decoded value does not match expected value: %v != %v",
						test.name, test.addr, decodedStringer.String())
					continue
				}
			}

			// Encode again and compare against the original.
			encoded := decoded.EncodeAddress()
			if test.encoded != encoded {
				t.Errorf("%v: decoding and encoding produced different addresses: %v != %v",
					test.name, test.encoded, encoded)
				continue
			}

			// Check script address against the raw base58 payload.
			saddr := base58DecodedHash(t, test.addr)
			if !bytes.Equal(saddr, decoded.ScriptAddress()) {
				t.Errorf("%v: script addresses do not match:\n%x != \n%x",
					test.name, saddr, decoded.ScriptAddress())
				continue
			}

			// Ensure the address is for the expected network.
			if !decoded.IsForNet(test.params) {
				t.Errorf("%v: IsForNet test failed, expected match", test.name)
				continue
			}
		}

		if !test.valid {
			// If address is invalid, but a creation function exists,
			// verify that it returns a nil addr and non-nil error.
			if test.f != nil {
				_, err := test.f()
				if err == nil {
					t.Errorf("%v: address is invalid but creating new address succeeded",
						test.name)
				}
			}
			continue
		}

		// Valid test, compare address created with f against the
		// expected encoding.
		addr, err := test.f()
		if err != nil {
			t.Errorf("%v: address creation failed: %v", test.name, err)
			continue
		}
		if addr.EncodeAddress() != test.encoded {
			t.Errorf("%v: created address encodes to %v, want %v",
				test.name, addr.EncodeAddress(), test.encoded)
		}
	}
}

// base58DecodedHash returns the 20-byte hash carried by a base58check
// address string.
func base58DecodedHash(t *testing.T, addr string) []byte {
	t.Helper()
	decoded, _, err := base58.CheckDecode(addr)
	if err != nil {
		t.Fatalf("CheckDecode error %v", err)
	}
	return decoded
}

// TestDecodeAddressErrors tests the error cases of address decoding.
func TestDecodeAddressErrors(t *testing.T) {
	// A valid mainnet address is the wrong type for testnet.
	_, err := DecodeAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &netparams.TestnetParams)
	if err != ErrUnknownAddressType {
		t.Errorf("mainnet address on testnet: got %v, want %v", err, ErrUnknownAddressType)
	}

	// A corrupted address fails its checksum.
	_, err = DecodeAddress("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNb", &netparams.MainnetParams)
	if err != ErrChecksumMismatch {
		t.Errorf("corrupted address: got %v, want %v", err, ErrChecksumMismatch)
	}

	// Garbage is neither.
	_, err = DecodeAddress("not an address", &netparams.MainnetParams)
	if err == nil {
		t.Error("garbage address decoded successfully")
	}
}

// TestHash160 tests the hash160 convenience wrapper against a known
// vector: the hash of the empty input.
func TestHash160(t *testing.T) {
	want, err := hex.DecodeString("b472a266d0bd89c13706a4132ccfb16f7c3b9fcb")
	if err != nil {
		t.Fatalf("invalid hex in test source: %v", err)
	}
	if got := Hash160(nil); !bytes.Equal(got, want) {
		t.Errorf("Hash160: got %x, want %x", got, want)
	}
}
