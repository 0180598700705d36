// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Payment field numbers on the wire.
const (
	paymentFieldMerchantData protowire.Number = 1
	paymentFieldTransactions protowire.Number = 2
	paymentFieldRefundTo     protowire.Number = 3
	paymentFieldMemo         protowire.Number = 4
)

// Payment is the message a payer submits to the merchant's payment URL
// after broadcasting the requested transactions.
type Payment struct {
	// MerchantData echoes the merchant data of the PaymentDetails being
	// satisfied, verbatim.
	MerchantData []byte

	// Transactions holds one or more serialized transactions that
	// satisfy the request's outputs. They are opaque to this package.
	Transactions [][]byte

	// RefundTo lists outputs the merchant may use to refund the payer.
	RefundTo []*Output

	// Memo is a human-readable note from the payer to the merchant.
	Memo *string
}

// encode appends the wire encoding of the payment to b.
func (msg *Payment) encode(b []byte) ([]byte, error) {
	if msg.MerchantData != nil {
		b = appendBytesField(b, paymentFieldMerchantData, msg.MerchantData)
	}
	for _, transaction := range msg.Transactions {
		b = appendBytesField(b, paymentFieldTransactions, transaction)
	}
	for _, output := range msg.RefundTo {
		serialized, err := output.Serialize()
		if err != nil {
			return nil, err
		}
		b = appendBytesField(b, paymentFieldRefundTo, serialized)
	}
	if msg.Memo != nil {
		b = appendStringField(b, paymentFieldMemo, *msg.Memo)
	}
	return b, nil
}

// decode parses the wire encoding of a payment from b.
func (msg *Payment) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == paymentFieldMerchantData && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.MerchantData = v
			b = b[n:]

		case num == paymentFieldTransactions && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.Transactions = append(msg.Transactions, v)
			b = b[n:]

		case num == paymentFieldRefundTo && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			output := &Output{}
			if err := output.decode(v); err != nil {
				return err
			}
			msg.RefundTo = append(msg.RefundTo, output)
			b = b[n:]

		case num == paymentFieldMemo && typ == protowire.BytesType:
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

	return nil
}

// Serialize returns the wire encoding of the payment.
func (msg *Payment) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// DeserializePayment parses a payment from its wire encoding.
func DeserializePayment(serialized []byte) (*Payment, error) {
	msg := &Payment{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
