// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// PaymentAck field numbers on the wire.
const (
	ackFieldPayment protowire.Number = 1
	ackFieldMemo    protowire.Number = 2
)

// PaymentAck is the merchant's acknowledgement of a received Payment. It
// embeds the payment being acknowledged and may carry a memo for display
// to the payer.
type PaymentAck struct {
	// Payment is the acknowledged payment. It is required.
	Payment *Payment

	// Memo is a human-readable note from the merchant to the payer, for
	// example a receipt reference.
	Memo *string
}

// encode appends the wire encoding of the acknowledgement to b.
func (msg *PaymentAck) encode(b []byte) ([]byte, error) {
	if msg.Payment == nil {
		return nil, errors.Wrap(ErrIncomplete,
			"payment ack is missing its required payment")
	}
	serialized, err := msg.Payment.Serialize()
	if err != nil {
		return nil, err
	}
	b = appendBytesField(b, ackFieldPayment, serialized)
	if msg.Memo != nil {
		b = appendStringField(b, ackFieldMemo, *msg.Memo)
	}
	return b, nil
}

// decode parses the wire encoding of a payment acknowledgement from b.
func (msg *PaymentAck) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == ackFieldPayment && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			payment := &Payment{}
			if err := payment.decode(v); err != nil {
				return err
			}
			msg.Payment = payment
			b = b[n:]

		case num == ackFieldMemo && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			memo := v
			msg.Memo = &memo
			b = b[n:]

		default:
			n, err := skipField(num, typ, b)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}

	if msg.Payment == nil {
		return errors.Wrap(ErrIncomplete,
			"payment ack is missing its required payment")
	}
	return nil
}

// Serialize returns the wire encoding of the acknowledgement.
func (msg *PaymentAck) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// DeserializePaymentAck parses a payment acknowledgement from its wire
// encoding.
func DeserializePaymentAck(serialized []byte) (*PaymentAck, error) {
	msg := &PaymentAck{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
