package payment

import (
	"time"

	"github.com/pkg/errors"

	"github.com/payproto/payproto/netparams"
	"github.com/payproto/payproto/txscript"
	"github.com/payproto/payproto/util"
	"github.com/payproto/payproto/wire"
)

// CreatePaymentRequest builds an unauthenticated payment request with a
// single output paying amount to toAddress on the given network. An
// amount of zero leaves the output amount unspecified, letting the payer
// decide. Memo and paymentURL are omitted from the wire message when
// empty. The details version is declared explicitly so the request passes
// the version gate of any conforming validator.
func CreatePaymentRequest(params *netparams.Params, amount util.Amount,
	toAddress util.Address, memo string, paymentURL string, now time.Time) (*wire.PaymentRequest, error) {

	script, err := txscript.PayToAddrScript(toAddress)
	if err != nil {
		return nil, err
	}

	output := &wire.Output{Script: script}
	if amount != 0 {
		value := uint64(amount)
		output.Amount = &value
	}

	network := params.PaymentProtocolID
	creationTime := uint64(now.Unix())
	details := &wire.PaymentDetails{
		Network: &network,
		Outputs: []*wire.Output{output},
		Time:    &creationTime,
	}
	if memo != "" {
		details.Memo = &memo
	}
	if paymentURL != "" {
		details.PaymentURL = &paymentURL
	}

	serializedDetails, err := details.Serialize()
	if err != nil {
		return nil, err
	}

	version := uint32(wire.PaymentDetailsVersion)
	return &wire.PaymentRequest{
		PaymentDetailsVersion:    &version,
		SerializedPaymentDetails: serializedDetails,
	}, nil
}

// CreatePayment builds the Payment message submitted to a merchant after
// the requested transactions have been made. Transactions carries one or
// more serialized transactions; at least one is expected by convention
// though not enforced here. A refund address is optional; when given, a
// refund amount must accompany it. Merchant data is typically echoed from
// the PaymentDetails being satisfied.
func CreatePayment(transactions [][]byte, refundAddress util.Address,
	refundAmount *util.Amount, memo string, merchantData []byte) (*wire.Payment, error) {

	payment := &wire.Payment{Transactions: transactions}

	if refundAddress != nil {
		if refundAmount == nil {
			return nil, errors.New("a refund address requires a refund amount")
		}
		script, err := txscript.PayToAddrScript(refundAddress)
		if err != nil {
			return nil, err
		}
		value := uint64(*refundAmount)
		payment.RefundTo = []*wire.Output{{Amount: &value, Script: script}}
	}

	if memo != "" {
		payment.Memo = &memo
	}
	if merchantData != nil {
		payment.MerchantData = merchantData
	}

	return payment, nil
}

// ParsePayment extracts the serialized transactions of a payment message.
// The transactions are opaque bytes; deserializing them belongs to the
// transaction collaborator.
func ParsePayment(payment *wire.Payment) [][]byte {
	return payment.Transactions
}

// CreatePaymentAck builds the acknowledgement for a received payment. The
// memo field is left absent when memo is empty, keeping the wire-level
// distinction between an absent and an empty memo intact.
func CreatePaymentAck(payment *wire.Payment, memo string) *wire.PaymentAck {
	ack := &wire.PaymentAck{Payment: payment}
	if memo != "" {
		ack.Memo = &memo
	}
	return ack
}

// PaymentAckMemo extracts the optional memo of an acknowledgement. The
// second return value reports whether the memo field was present on the
// wire, distinguishing an absent memo from a present empty one.
func PaymentAckMemo(ack *wire.PaymentAck) (string, bool) {
	if ack.Memo == nil {
		return "", false
	}
	return *ack.Memo, true
}
