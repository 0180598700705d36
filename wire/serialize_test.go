// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func newUint64(v uint64) *uint64 {
	return &v
}

func newUint32(v uint32) *uint32 {
	return &v
}

func newString(v string) *string {
	return &v
}

// testScript is a well-formed P2PKH script used throughout the wire
// tests.
var testScript = append(append([]byte{0x76, 0xa9, 0x14},
	bytes.Repeat([]byte{0x01}, 20)...), 0x88, 0xac)

// TestOutputWire tests the Output wire encode and decode against
// hand-computed reference encodings.
func TestOutputWire(t *testing.T) {
	tests := []struct {
		name string
		in   *Output // Message to encode
		out  *Output // Expected decoded message
		buf  []byte  // Wire encoding
	}{
		{
			name: "amount and script",
			in:   &Output{Amount: newUint64(100000), Script: testScript},
			out:  &Output{Amount: newUint64(100000), Script: testScript},
			buf: append([]byte{
				0x08, 0xa0, 0x8d, 0x06, // amount 100000
				0x12, 0x19, // script, 25 bytes
			}, testScript...),
		},
		{
			name: "absent amount stays absent",
			in:   &Output{Script: testScript},
			out:  &Output{Script: testScript},
			buf:  append([]byte{0x12, 0x19}, testScript...),
		},
		{
			name: "explicit zero amount stays present",
			in:   &Output{Amount: newUint64(0), Script: testScript},
			out:  &Output{Amount: newUint64(0), Script: testScript},
			buf:  append([]byte{0x08, 0x00, 0x12, 0x19}, testScript...),
		},
		{
			name: "empty script is present, not absent",
			in:   &Output{Script: []byte{}},
			out:  &Output{Script: []byte{}},
			buf:  []byte{0x12, 0x00},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Encode the message to wire format.
		buf, err := test.in.Serialize()
		if err != nil {
			t.Errorf("Serialize #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(buf, test.buf) {
			t.Errorf("Serialize #%d (%s)\n got: %s want: %s", i, test.name,
				spew.Sdump(buf), spew.Sdump(test.buf))
			continue
		}

		// Decode the message from wire format.
		msg, err := DeserializeOutput(test.buf)
		if err != nil {
			t.Errorf("DeserializeOutput #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !reflect.DeepEqual(msg, test.out) {
			t.Errorf("DeserializeOutput #%d (%s)\n got: %s want: %s", i,
				test.name, spew.Sdump(msg), spew.Sdump(test.out))
			continue
		}
	}
}

// TestPaymentDetailsWire tests the PaymentDetails wire encode and decode
// against a hand-computed reference encoding.
func TestPaymentDetailsWire(t *testing.T) {
	details := &PaymentDetails{
		Network: newString("test"),
		Outputs: []*Output{{Amount: newUint64(100000), Script: testScript}},
		Time:    newUint64(1400000000),
		Memo:    newString("coffee"),
	}

	var wantBuf []byte
	wantBuf = append(wantBuf, 0x0a, 0x04, 't', 'e', 's', 't')
	wantBuf = append(wantBuf, 0x12, 0x1f)
	wantBuf = append(wantBuf, 0x08, 0xa0, 0x8d, 0x06, 0x12, 0x19)
	wantBuf = append(wantBuf, testScript...)
	wantBuf = append(wantBuf, 0x18, 0x80, 0x9c, 0xc9, 0x9b, 0x05)
	wantBuf = append(wantBuf, 0x2a, 0x06, 'c', 'o', 'f', 'f', 'e', 'e')

	buf, err := details.Serialize()
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	if !bytes.Equal(buf, wantBuf) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf), spew.Sdump(wantBuf))
	}

	decoded, err := DeserializePaymentDetails(buf)
	if err != nil {
		t.Fatalf("DeserializePaymentDetails error %v", err)
	}
	if !reflect.DeepEqual(decoded, details) {
		t.Fatalf("DeserializePaymentDetails\n got: %s want: %s",
			spew.Sdump(decoded), spew.Sdump(details))
	}
}

// TestPaymentDetailsRoundTrip tests that every optional payment details
// field survives a round trip, and that absent fields stay absent.
func TestPaymentDetailsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   *PaymentDetails
	}{
		{
			name: "all fields set",
			in: &PaymentDetails{
				Network: newString("test"),
				Outputs: []*Output{
					{Amount: newUint64(100000), Script: testScript},
					{Script: testScript},
				},
				Time:         newUint64(1400000000),
				Expires:      newUint64(1400000600),
				Memo:         newString("coffee"),
				PaymentURL:   newString("https://merchant.example/pay"),
				MerchantData: []byte{0xca, 0xfe},
			},
		},
		{
			name: "only outputs",
			in: &PaymentDetails{
				Outputs: []*Output{{Script: testScript}},
			},
		},
		{
			name: "empty memo is present, not absent",
			in: &PaymentDetails{
				Outputs: []*Output{{Script: testScript}},
				Memo:    newString(""),
			},
		},
		{
			name: "empty merchant data is present, not absent",
			in: &PaymentDetails{
				Outputs:      []*Output{{Script: testScript}},
				MerchantData: []byte{},
			},
		},
		{
			name: "no outputs at all",
			in:   &PaymentDetails{Network: newString("main")},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		buf, err := test.in.Serialize()
		if err != nil {
			t.Errorf("Serialize #%d (%s) error %v", i, test.name, err)
			continue
		}
		decoded, err := DeserializePaymentDetails(buf)
		if err != nil {
			t.Errorf("DeserializePaymentDetails #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !reflect.DeepEqual(decoded, test.in) {
			t.Errorf("DeserializePaymentDetails #%d (%s)\n got: %s want: %s",
				i, test.name, spew.Sdump(decoded), spew.Sdump(test.in))
			continue
		}
	}
}

// TestPaymentRequestWire tests the PaymentRequest wire encode and decode
// against a hand-computed reference encoding, as well as the canonical
// serialization used for signing.
func TestPaymentRequestWire(t *testing.T) {
	serializedDetails := []byte{0x0a, 0x04, 't', 'e', 's', 't'}
	request := &PaymentRequest{
		PaymentDetailsVersion:    newUint32(1),
		SerializedPaymentDetails: serializedDetails,
	}

	wantBuf := []byte{
		0x08, 0x01, // payment_details_version 1
		0x22, 0x06, 0x0a, 0x04, 't', 'e', 's', 't', // serialized details
	}

	buf, err := request.Serialize()
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	if !bytes.Equal(buf, wantBuf) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf), spew.Sdump(wantBuf))
	}

	decoded, err := DeserializePaymentRequest(buf)
	if err != nil {
		t.Fatalf("DeserializePaymentRequest error %v", err)
	}
	if !reflect.DeepEqual(decoded, request) {
		t.Fatalf("DeserializePaymentRequest\n got: %s want: %s",
			spew.Sdump(decoded), spew.Sdump(request))
	}

	// The canonical bytes carry the signature field set to the empty
	// value, not omitted.
	canonical, err := request.SerializeForSignature()
	if err != nil {
		t.Fatalf("SerializeForSignature error %v", err)
	}
	wantCanonical := append(append([]byte{}, wantBuf...), 0x2a, 0x00)
	if !bytes.Equal(canonical, wantCanonical) {
		t.Fatalf("SerializeForSignature\n got: %s want: %s",
			spew.Sdump(canonical), spew.Sdump(wantCanonical))
	}

	// A request that carries a signature serializes canonically to the
	// same bytes.
	signed := &PaymentRequest{
		PaymentDetailsVersion:    newUint32(1),
		SerializedPaymentDetails: serializedDetails,
		Signature:                []byte{0xde, 0xad, 0xbe, 0xef},
	}
	canonicalSigned, err := signed.SerializeForSignature()
	if err != nil {
		t.Fatalf("SerializeForSignature error %v", err)
	}
	if !bytes.Equal(canonicalSigned, wantCanonical) {
		t.Fatalf("SerializeForSignature of signed request\n got: %s want: %s",
			spew.Sdump(canonicalSigned), spew.Sdump(wantCanonical))
	}
	if signed.Signature == nil || !bytes.Equal(signed.Signature, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("SerializeForSignature mutated the request's signature: %s",
			spew.Sdump(signed.Signature))
	}
}

// TestPaymentRequestDefaults tests the wire defaults of the optional
// request fields.
func TestPaymentRequestDefaults(t *testing.T) {
	request := &PaymentRequest{SerializedPaymentDetails: []byte{}}
	if got := request.GetPaymentDetailsVersion(); got != 1 {
		t.Errorf("GetPaymentDetailsVersion: got %d, want 1", got)
	}
	if got := request.GetPKIType(); got != PKITypeNone {
		t.Errorf("GetPKIType: got %q, want %q", got, PKITypeNone)
	}

	request.PaymentDetailsVersion = newUint32(2)
	request.PKIType = newString(PKITypeX509SHA256)
	if got := request.GetPaymentDetailsVersion(); got != 2 {
		t.Errorf("GetPaymentDetailsVersion: got %d, want 2", got)
	}
	if got := request.GetPKIType(); got != PKITypeX509SHA256 {
		t.Errorf("GetPKIType: got %q, want %q", got, PKITypeX509SHA256)
	}

	details := &PaymentDetails{}
	if got := details.GetNetwork(); got != "main" {
		t.Errorf("GetNetwork: got %q, want %q", got, "main")
	}

	output := &Output{Script: []byte{}}
	if got := output.GetAmount(); got != 0 {
		t.Errorf("GetAmount: got %d, want 0", got)
	}
}

// TestPaymentWire tests the Payment wire encode and decode against a
// hand-computed reference encoding.
func TestPaymentWire(t *testing.T) {
	payment := &Payment{
		MerchantData: []byte{0xca, 0xfe},
		Transactions: [][]byte{{0x01, 0x02, 0x03}},
		Memo:         newString("ok"),
	}

	wantBuf := []byte{
		0x0a, 0x02, 0xca, 0xfe, // merchant data
		0x12, 0x03, 0x01, 0x02, 0x03, // transaction
		0x22, 0x02, 'o', 'k', // memo
	}

	buf, err := payment.Serialize()
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	if !bytes.Equal(buf, wantBuf) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf), spew.Sdump(wantBuf))
	}

	decoded, err := DeserializePayment(buf)
	if err != nil {
		t.Fatalf("DeserializePayment error %v", err)
	}
	if !reflect.DeepEqual(decoded, payment) {
		t.Fatalf("DeserializePayment\n got: %s want: %s",
			spew.Sdump(decoded), spew.Sdump(payment))
	}
}

// TestPaymentRoundTrip tests that refund outputs and multiple
// transactions survive a round trip.
func TestPaymentRoundTrip(t *testing.T) {
	payment := &Payment{
		MerchantData: []byte{0x01},
		Transactions: [][]byte{{0x01}, {0x02}, {0x03}},
		RefundTo: []*Output{
			{Amount: newUint64(50000), Script: testScript},
		},
		Memo: newString("change please"),
	}

	buf, err := payment.Serialize()
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	decoded, err := DeserializePayment(buf)
	if err != nil {
		t.Fatalf("DeserializePayment error %v", err)
	}
	if !reflect.DeepEqual(decoded, payment) {
		t.Fatalf("DeserializePayment\n got: %s want: %s",
			spew.Sdump(decoded), spew.Sdump(payment))
	}
}

// TestPaymentAckWire tests the PaymentAck wire encode and decode against
// a hand-computed reference encoding, including the absent-vs-empty memo
// distinction.
func TestPaymentAckWire(t *testing.T) {
	tests := []struct {
		name string
		in   *PaymentAck
		buf  []byte
	}{
		{
			name: "memo set",
			in: &PaymentAck{
				Payment: &Payment{Transactions: [][]byte{{0xde, 0xad}}},
				Memo:    newString("thanks"),
			},
			buf: []byte{
				0x0a, 0x04, 0x12, 0x02, 0xde, 0xad,
				0x12, 0x06, 't', 'h', 'a', 'n', 'k', 's',
			},
		},
		{
			name: "memo absent",
			in: &PaymentAck{
				Payment: &Payment{Transactions: [][]byte{{0xde, 0xad}}},
			},
			buf: []byte{0x0a, 0x04, 0x12, 0x02, 0xde, 0xad},
		},
		{
			name: "memo present but empty",
			in: &PaymentAck{
				Payment: &Payment{Transactions: [][]byte{{0xde, 0xad}}},
				Memo:    newString(""),
			},
			buf: []byte{0x0a, 0x04, 0x12, 0x02, 0xde, 0xad, 0x12, 0x00},
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		buf, err := test.in.Serialize()
		if err != nil {
			t.Errorf("Serialize #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !bytes.Equal(buf, test.buf) {
			t.Errorf("Serialize #%d (%s)\n got: %s want: %s", i, test.name,
				spew.Sdump(buf), spew.Sdump(test.buf))
			continue
		}

		decoded, err := DeserializePaymentAck(test.buf)
		if err != nil {
			t.Errorf("DeserializePaymentAck #%d (%s) error %v", i, test.name, err)
			continue
		}
		if !reflect.DeepEqual(decoded, test.in) {
			t.Errorf("DeserializePaymentAck #%d (%s)\n got: %s want: %s",
				i, test.name, spew.Sdump(decoded), spew.Sdump(test.in))
			continue
		}
	}
}

// TestX509CertificatesRoundTrip tests the certificate chain container
// round trip.
func TestX509CertificatesRoundTrip(t *testing.T) {
	chain := &X509Certificates{
		Certificate: [][]byte{{0x30, 0x01}, {0x30, 0x02}},
	}
	buf, err := chain.Serialize()
	if err != nil {
		t.Fatalf("Serialize error %v", err)
	}
	wantBuf := []byte{0x0a, 0x02, 0x30, 0x01, 0x0a, 0x02, 0x30, 0x02}
	if !bytes.Equal(buf, wantBuf) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf), spew.Sdump(wantBuf))
	}

	decoded, err := DeserializeX509Certificates(buf)
	if err != nil {
		t.Fatalf("DeserializeX509Certificates error %v", err)
	}
	if !reflect.DeepEqual(decoded, chain) {
		t.Fatalf("DeserializeX509Certificates\n got: %s want: %s",
			spew.Sdump(decoded), spew.Sdump(chain))
	}
}

// TestUnknownFieldsSkipped tests that decoding tolerates unknown fields,
// preserving forward compatibility with schema extensions.
func TestUnknownFieldsSkipped(t *testing.T) {
	// A payment details message with an unknown varint field 15 and an
	// unknown length-delimited field 16 around a known memo field.
	buf := []byte{
		0x78, 0x2a, // field 15, varint 42
		0x2a, 0x02, 'h', 'i', // memo "hi"
		0x82, 0x01, 0x03, 0x01, 0x02, 0x03, // field 16, 3 bytes
	}
	decoded, err := DeserializePaymentDetails(buf)
	if err != nil {
		t.Fatalf("DeserializePaymentDetails error %v", err)
	}
	if decoded.Memo == nil || *decoded.Memo != "hi" {
		t.Fatalf("DeserializePaymentDetails memo: got %s, want \"hi\"",
			spew.Sdump(decoded.Memo))
	}
}
