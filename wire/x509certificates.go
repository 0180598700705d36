// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// X509Certificates field numbers on the wire.
const certificatesFieldCertificate protowire.Number = 1

// X509Certificates is the message carried in a PaymentRequest's pki_data
// field for the X.509 PKI types. It holds a chain of DER-encoded
// certificates, leaf first.
type X509Certificates struct {
	// Certificate holds the DER bytes of each certificate in the chain,
	// ordered from the signing leaf towards the root authority.
	Certificate [][]byte
}

// encode appends the wire encoding of the certificate chain to b.
func (msg *X509Certificates) encode(b []byte) ([]byte, error) {
	for _, der := range msg.Certificate {
		b = appendBytesField(b, certificatesFieldCertificate, der)
	}
	return b, nil
}

// decode parses the wire encoding of a certificate chain from b.
func (msg *X509Certificates) decode(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]

		switch {
		case num == certificatesFieldCertificate && typ == protowire.BytesType:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			msg.Certificate = append(msg.Certificate, v)
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

// Serialize returns the wire encoding of the certificate chain.
func (msg *X509Certificates) Serialize() ([]byte, error) {
	return msg.encode(nil)
}

// DeserializeX509Certificates parses a certificate chain from its wire
// encoding, typically the pki_data bytes of an enclosing PaymentRequest.
func DeserializeX509Certificates(serialized []byte) (*X509Certificates, error) {
	msg := &X509Certificates{}
	if err := msg.decode(serialized); err != nil {
		return nil, err
	}
	return msg, nil
}
