// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Output field numbers on the wire.
const (
	outputFieldAmount protowire.Number = 1
	outputFieldScript protowire.Number = 2
)

// Output describes where a payment (or a payment refund) is to be sent:
// an amount in the smallest currency unit and the output script that must
// be satisfied to claim it.
type Output struct {
	// Amount is the number of base currency units this output is worth.
	// Nil means the field was absent on the wire, which carries the
	// default of zero: "unspecified amount, payer decides".
	Amount *uint64

	// Script is the output script. It is required and opaque to this
	// package; syntactic validation belongs to the script collaborator.
	Script []byte
}

// GetAmount returns the output amount, applying the wire default of zero
// when the field is absent.
func (msg *Output) GetAmount() uint64 {
	if msg.Amount == nil {
		return 0
	}
	return *msg.Amount
}

// encode appends the wire encoding of the output to b.
func (msg *Output) encode(b []byte) ([]byte, error) {
	if msg.Script == nil {
		return nil, errors.Wrap(ErrIncomplete, "output is missing its required script")
	}
	if msg.Amount != nil {
		b = appendVarintField(b, outputFieldAmount, *msg.Amount)
	}
	b = appendBytesField(b, outputFieldScript, msg.Script)
	return b, nil
}

// decode parses the wire encoding of an output from b, which must contain
// exactly one output.
func (msg *Output) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == outputFieldAmount && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			amount := v
			msg.Amount = &amount
			b = b[n:]

		case num == outputFieldScript && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.Script = v
			b = b[n:]

		default:
			n, err := skipField(num, typ, b)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}

	if msg.Script == nil {
		return errors.Wrap(ErrIncomplete, "output is missing its required script")
	}
	return nil
}

// Serialize returns the wire encoding of the output.
func (msg *Output) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// DeserializeOutput parses a single output from its wire encoding.
func DeserializeOutput(serialized []byte) (*Output, error) {
	msg := &Output{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
