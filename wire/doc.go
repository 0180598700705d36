// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the payment-protocol wire format.

The payment protocol defines five messages, serialized with the proto2
wire encoding: PaymentRequest with its nested PaymentDetails and Output,
Payment, PaymentAck and the X509Certificates container carried in a
request's pki_data field. Messages round-trip exactly: a field that was
absent on the wire stays absent after a decode, and is never conflated
with a present field carrying the default value. Optional scalar fields
are therefore represented as pointers and optional byte fields as nil
versus non-nil slices.

Deserialization distinguishes three failure kinds. ErrOversized is
returned before any parsing when the input exceeds the maximum request
size. ErrMalformed is returned for byte sequences that do not parse as
the wire encoding. ErrIncomplete is returned for well-formed encodings
that lack a required field. All three are matched with errors.Is.
*/
package wire
