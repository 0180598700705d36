package payment

import (
	"github.com/payproto/payproto/util"
)

// Standard names the payment standard a PaymentIntent was produced from.
type Standard string

// The standards an intent may originate from. This package only produces
// StandardBIP70 intents; StandardBIP21 is reserved for direct-address URI
// collaborators that normalize into the same type.
const (
	StandardBIP21 Standard = "bip21"
	StandardBIP70 Standard = "bip70"
)

// Output is a normalized request output: an amount and the script a
// satisfying transaction output must carry. An amount of zero means the
// payer decides.
type Output struct {
	Amount util.Amount
	Script []byte
}

// PaymentIntent is the normalized, validated form of a payment request,
// ready for a wallet to act on. It is immutable by convention: callers
// must not modify it after construction.
type PaymentIntent struct {
	// Standard names the payment standard the intent was produced from.
	Standard Standard

	// PayeeName is the display name of the verified payee, empty for an
	// unauthenticated request.
	PayeeName string

	// PayeeOrganization is the organization of the verified payee, when
	// the certificate carries one.
	PayeeOrganization string

	// PayeeVerifiedBy is the display name of the root authority that
	// vouched for the payee, empty for an unauthenticated request.
	PayeeVerifiedBy string

	// Outputs is the ordered list of outputs the payment must fund.
	Outputs []*Output

	// Memo is the merchant's note to the payer, empty when absent.
	Memo string

	// PaymentURL is where the resulting Payment message should be
	// submitted, empty when absent.
	PaymentURL string

	// MerchantData is the merchant's opaque correlation blob, to be
	// echoed back in the Payment message. Nil when absent.
	MerchantData []byte

	// PaymentRequestHash is the sha256 digest of the exact serialized
	// request bytes the intent was parsed from. It is a stable identity
	// for deduplication; it is never recomputed from re-serialized
	// fields, since a re-serialization may legally differ byte-for-byte.
	PaymentRequestHash []byte
}

// TotalAmount returns the sum of all output amounts.
func (intent *PaymentIntent) TotalAmount() util.Amount {
	var total util.Amount
	for _, output := range intent.Outputs {
		total += output.Amount
	}
	return total
}

// HasPaymentURL returns whether the intent carries a payment URL to
// submit the resulting Payment message to.
func (intent *PaymentIntent) HasPaymentURL() bool {
	return intent.PaymentURL != ""
}

// IsVerified returns whether the intent originates from a request whose
// PKI signature chain was verified.
func (intent *PaymentIntent) IsVerified() bool {
	return intent.PayeeVerifiedBy != ""
}
