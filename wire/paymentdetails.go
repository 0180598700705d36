// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// PaymentDetails field numbers on the wire.
const (
	detailsFieldNetwork      protowire.Number = 1
	detailsFieldOutputs      protowire.Number = 2
	detailsFieldTime         protowire.Number = 3
	detailsFieldExpires      protowire.Number = 4
	detailsFieldMemo         protowire.Number = 5
	detailsFieldPaymentURL   protowire.Number = 6
	detailsFieldMerchantData protowire.Number = 7
)

// defaultNetwork is the wire default of the network field.
const defaultNetwork = "main"

// PaymentDetails is the nested message of a PaymentRequest describing
// what is being requested: the target network, the outputs to satisfy and
// assorted merchant metadata. It travels inside a request as opaque bytes
// so that the merchant's signature stays valid regardless of how the
// enclosing request is re-serialized.
type PaymentDetails struct {
	// Network identifies which network the request is valid for. Nil
	// means absent, which carries the wire default "main".
	Network *string

	// Outputs is the ordered list of outputs a satisfying payment must
	// fund. A request that asks for funds carries at least one, though
	// the wire format itself does not forbid zero.
	Outputs []*Output

	// Time is the creation time of the request in epoch seconds.
	Time *uint64

	// Expires is the time in epoch seconds at which the request becomes
	// invalid. Nil means the request never expires.
	Expires *uint64

	// Memo is a human-readable note from the merchant to the payer.
	Memo *string

	// PaymentURL is the location the resulting Payment message should be
	// submitted to.
	PaymentURL *string

	// MerchantData is an opaque blob the merchant uses to correlate the
	// eventual Payment with this request. It is echoed back verbatim.
	MerchantData []byte
}

// GetNetwork returns the network identifier, applying the wire default
// "main" when the field is absent.
func (msg *PaymentDetails) GetNetwork() string {
	if msg.Network == nil {
		return defaultNetwork
	}
	return *msg.Network
}

// encode appends the wire encoding of the payment details to b.
func (msg *PaymentDetails) encode(b []byte) ([]byte, error) {
	if msg.Network != nil {
		b = appendStringField(b, detailsFieldNetwork, *msg.Network)
	}
	for _, output := range msg.Outputs {
		serialized, err := output.Serialize()
		if err != nil {
			return nil, err
		}
		b = appendBytesField(b, detailsFieldOutputs, serialized)
	}
	if msg.Time != nil {
		b = appendVarintField(b, detailsFieldTime, *msg.Time)
	}
	if msg.Expires != nil {
		b = appendVarintField(b, detailsFieldExpires, *msg.Expires)
	}
	if msg.Memo != nil {
		b = appendStringField(b, detailsFieldMemo, *msg.Memo)
	}
	if msg.PaymentURL != nil {
		b = appendStringField(b, detailsFieldPaymentURL, *msg.PaymentURL)
	}
	if msg.MerchantData != nil {
		b = appendBytesField(b, detailsFieldMerchantData, msg.MerchantData)
	}
	return b, nil
}

// decode parses the wire encoding of payment details from b.
func (msg *PaymentDetails) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == detailsFieldNetwork && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			network := v
			msg.Network = &network
			b = b[n:]

		case num == detailsFieldOutputs && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			output := &Output{}
			if err := output.decode(v); err != nil {
				return err
			}
			msg.Outputs = append(msg.Outputs, output)
			b = b[n:]

		case num == detailsFieldTime && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			t := v
			msg.Time = &t
			b = b[n:]

		case num == detailsFieldExpires && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			expires := v
			msg.Expires = &expires
			b = b[n:]

		case num == detailsFieldMemo && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			memo := v
			msg.Memo = &memo
			b = b[n:]

		case num == detailsFieldPaymentURL && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			paymentURL := v
			msg.PaymentURL = &paymentURL
			b = b[n:]

		case num == detailsFieldMerchantData && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.MerchantData = v
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

// Serialize returns the wire encoding of the payment details.
func (msg *PaymentDetails) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// DeserializePaymentDetails parses payment details from their wire
// encoding, typically the serialized_payment_details bytes of an enclosing
// PaymentRequest.
func DeserializePaymentDetails(serialized []byte) (*PaymentDetails, error) {
	msg := &PaymentDetails{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
