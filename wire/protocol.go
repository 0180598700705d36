// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// MIME types exchanged at the transport boundary, per BIP71. The codec
// does not enforce them; they are exported for transport collaborators.
const (
	MIMETypePaymentRequest = "application/bitcoin-paymentrequest"
	MIMETypePayment        = "application/bitcoin-payment"
	MIMETypePaymentAck     = "application/bitcoin-paymentack"
)

// MaxPaymentRequestSize is the maximum number of bytes a serialized
// PaymentRequest may occupy. Larger inputs are rejected before parsing to
// bound worst-case allocation from adversarial input.
const MaxPaymentRequestSize = 50000

// PaymentDetailsVersion is the only payment details schema version this
// package understands.
const PaymentDetailsVersion = 1

// PKI type tags a PaymentRequest may declare in its pki_type field.
const (
	// PKITypeNone marks an unauthenticated request. It is the wire
	// default when the field is absent.
	PKITypeNone = "none"

	// PKITypeX509SHA256 marks a request signed over the SHA-256 digest of
	// its canonical bytes with the leaf key of an embedded X.509 chain.
	PKITypeX509SHA256 = "x509+sha256"

	// PKITypeX509SHA1 is the legacy SHA-1 variant of PKITypeX509SHA256.
	PKITypeX509SHA1 = "x509+sha1"
)
