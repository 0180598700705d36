// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// PaymentRequest field numbers on the wire.
const (
	requestFieldDetailsVersion protowire.Number = 1
	requestFieldPKIType        protowire.Number = 2
	requestFieldPKIData        protowire.Number = 3
	requestFieldDetails        protowire.Number = 4
	requestFieldSignature      protowire.Number = 5
)

// PaymentRequest is the top-level message a merchant hands to a payer. It
// wraps serialized PaymentDetails together with an optional PKI signature
// chain authenticating the merchant.
type PaymentRequest struct {
	// PaymentDetailsVersion declares the schema version of the nested
	// details. Nil means absent; the wire default is 1.
	PaymentDetailsVersion *uint32

	// PKIType declares how the request is authenticated. Nil means
	// absent, which carries the wire default PKITypeNone.
	PKIType *string

	// PKIData carries the serialized X509Certificates chain when PKIType
	// is an X.509 variant.
	PKIData []byte

	// SerializedPaymentDetails is the required nested PaymentDetails
	// message, kept as the exact bytes the merchant signed.
	SerializedPaymentDetails []byte

	// Signature is the detached signature over the request's canonical
	// bytes, made with the leaf key of the embedded chain.
	Signature []byte
}

// GetPaymentDetailsVersion returns the declared details version, applying
// the wire default of 1 when the field is absent.
func (msg *PaymentRequest) GetPaymentDetailsVersion() uint32 {
	if msg.PaymentDetailsVersion == nil {
		return PaymentDetailsVersion
	}
	return *msg.PaymentDetailsVersion
}

// GetPKIType returns the declared PKI type, applying the wire default
// PKITypeNone when the field is absent.
func (msg *PaymentRequest) GetPKIType() string {
	if msg.PKIType == nil {
		return PKITypeNone
	}
	return *msg.PKIType
}

// encode appends the wire encoding of the request to b.
func (msg *PaymentRequest) encode(b []byte) ([]byte, error) {
	if msg.SerializedPaymentDetails == nil {
		return nil, errors.Wrap(ErrIncomplete,
			"payment request is missing its required serialized payment details")
	}
	if msg.PaymentDetailsVersion != nil {
		b = appendVarintField(b, requestFieldDetailsVersion, uint64(*msg.PaymentDetailsVersion))
	}
	if msg.PKIType != nil {
		b = appendStringField(b, requestFieldPKIType, *msg.PKIType)
	}
	if msg.PKIData != nil {
		b = appendBytesField(b, requestFieldPKIData, msg.PKIData)
	}
	b = appendBytesField(b, requestFieldDetails, msg.SerializedPaymentDetails)
	if msg.Signature != nil {
		b = appendBytesField(b, requestFieldSignature, msg.Signature)
	}
	return b, nil
}

// decode parses the wire encoding of a payment request from b.
func (msg *PaymentRequest) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == requestFieldDetailsVersion && typ == protowire.VarintType:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			version := uint32(v)
			msg.PaymentDetailsVersion = &version
			b = b[n:]

		case num == requestFieldPKIType && typ == protowire.BytesType:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			pkiType := v
			msg.PKIType = &pkiType
			b = b[n:]

		case num == requestFieldPKIData && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.PKIData = v
			b = b[n:]

		case num == requestFieldDetails && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.SerializedPaymentDetails = v
			b = b[n:]

		case num == requestFieldSignature && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.Signature = v
			b = b[n:]

		default:
			n, err := skipField(num, typ, b)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}

	if msg.SerializedPaymentDetails == nil {
		return errors.Wrap(ErrIncomplete,
			"payment request is missing its required serialized payment details")
	}
	return nil
}

// Serialize returns the wire encoding of the payment request.
func (msg *PaymentRequest) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// SerializeForSignature returns the canonical bytes of the request: the
// same encoding as Serialize but with the signature field set to the
// empty value. These are the bytes a merchant's detached signature is
// computed over.
func (msg *PaymentRequest) SerializeForSignature() ([]byte, error) {
	sigless := *msg
	sigless.Signature = []byte{}
	return sigless.encode(nil)
}

// DeserializePaymentRequest parses a payment request from its wire
// encoding. Inputs larger than MaxPaymentRequestSize are rejected with
// ErrOversized before any parsing takes place.
func DeserializePaymentRequest(serialized []byte) (*PaymentRequest, error) {
	if len(serialized) > MaxPaymentRequestSize {
		return nil, errors.Wrapf(ErrOversized,
			"payment request is %d bytes, maximum is %d",
			len(serialized), MaxPaymentRequestSize)
	}
	msg := &PaymentRequest{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
