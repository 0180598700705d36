package payment

import (
	"crypto/sha256"
	"net/url"
	"strings"
	"time"

	"github.com/payproto/payproto/infrastructure/logger"
	"github.com/payproto/payproto/netparams"
	"github.com/payproto/payproto/pki"
	"github.com/payproto/payproto/txscript"
	"github.com/payproto/payproto/util"
	"github.com/payproto/payproto/wire"
)

// ScriptChecker checks output scripts for syntactic validity. It is the
// seam to the script-engine collaborator: the validator rejects a request
// whose outputs this checker cannot parse, and makes no further judgement
// about the scripts.
type ScriptChecker interface {
	CheckScript(script []byte) error
}

// ScriptCheckerFunc is an adapter allowing an ordinary function to be
// used as a ScriptChecker.
type ScriptCheckerFunc func(script []byte) error

// CheckScript delegates to the wrapped function.
func (f ScriptCheckerFunc) CheckScript(script []byte) error {
	return f(script)
}

// Config holds the collaborators a Validator consults. Everything the
// validation rules depend on is injected here, so tests can simulate any
// network, time and trust policy in one process.
type Config struct {
	// Params identifies the network this deployment serves and the
	// payment-URL schemes it supports.
	Params *netparams.Params

	// TrustStore supplies the trusted roots for PKI verification. May be
	// nil when only unauthenticated requests are expected; any request
	// declaring a PKI type will then fail as untrusted.
	TrustStore pki.TrustStore

	// Clock supplies the current time for expiry checks. Defaults to
	// time.Now.
	Clock func() time.Time

	// ScriptChecker validates output scripts. Defaults to
	// txscript.CheckScript.
	ScriptChecker ScriptChecker
}

// Validator validates serialized payment requests against a fixed
// configuration and normalizes them into PaymentIntents. It holds no
// mutable state and is safe for concurrent use.
type Validator struct {
	cfg Config
}

// NewValidator creates a Validator for the passed configuration, filling
// in the default clock and script checker where unset.
func NewValidator(cfg Config) *Validator {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.ScriptChecker == nil {
		cfg.ScriptChecker = ScriptCheckerFunc(txscript.CheckScript)
	}
	return &Validator{cfg: cfg}
}

// ParsePaymentRequest decodes and validates a serialized payment request
// and returns the normalized intent.
//
// Validation is a linear sequence of checks, each of which fails the
// whole request on first violation: size bound, decode, PKI verification
// (skipped for PKI type "none"), details version, expiry, network, output
// scripts and payment-URL scheme. Every failure is returned as a
// RuleError wrapping one of this package's Err* types.
func (v *Validator) ParsePaymentRequest(serialized []byte) (*PaymentIntent, error) {
	defer logger.LogAndMeasureExecutionTime(log, "ParsePaymentRequest")()

	if len(serialized) > wire.MaxPaymentRequestSize {
		return nil, ruleError(ErrOversizedRequest{Size: len(serialized)})
	}

	request, err := wire.DeserializePaymentRequest(serialized)
	if err != nil {
		return nil, ruleError(ErrMalformedRequest{Err: err})
	}

	var payeeName, payeeOrganization, payeeVerifiedBy string
	if pkiType := request.GetPKIType(); pkiType != wire.PKITypeNone {
		verificationData, err := pki.VerifyPaymentRequest(request, v.cfg.TrustStore)
		if err != nil {
			log.Debugf("rejecting payment request with pki type %q: %s", pkiType, err)
			return nil, ruleError(ErrUntrustedRequest{Err: err})
		}
		payeeName = verificationData.DisplayName
		payeeOrganization = verificationData.Organization
		payeeVerifiedBy = verificationData.RootAuthorityName
	}

	// The details version must be declared and equal to the supported
	// version. An undeclared version is reported as zero.
	if request.PaymentDetailsVersion == nil ||
		*request.PaymentDetailsVersion != wire.PaymentDetailsVersion {

		var declared uint32
		if request.PaymentDetailsVersion != nil {
			declared = *request.PaymentDetailsVersion
		}
		return nil, ruleError(ErrUnsupportedVersion{Version: declared})
	}

	details, err := wire.DeserializePaymentDetails(request.SerializedPaymentDetails)
	if err != nil {
		return nil, ruleError(ErrMalformedRequest{Err: err})
	}

	now := uint64(v.cfg.Clock().Unix())
	if details.Expires != nil && now >= *details.Expires {
		return nil, ruleError(ErrExpired{Now: now, Expires: *details.Expires})
	}

	if details.GetNetwork() != v.cfg.Params.PaymentProtocolID {
		return nil, ruleError(ErrWrongNetwork{Network: details.GetNetwork()})
	}

	outputs := make([]*Output, len(details.Outputs))
	for i, output := range details.Outputs {
		if err := v.cfg.ScriptChecker.CheckScript(output.Script); err != nil {
			return nil, ruleError(ErrInvalidOutputs{Index: i, Err: err})
		}
		outputs[i] = &Output{
			Amount: util.Amount(output.GetAmount()),
			Script: output.Script,
		}
	}

	var memo, paymentURL string
	if details.Memo != nil {
		memo = *details.Memo
	}
	if details.PaymentURL != nil {
		paymentURL = *details.PaymentURL
		if !v.isSupportedPaymentURL(paymentURL) {
			return nil, ruleError(ErrUnsupportedPaymentURL{URL: paymentURL})
		}
	}

	requestHash := sha256.Sum256(serialized)

	log.Debugf("accepted payment request %x for network %s with %d outputs",
		requestHash, v.cfg.Params.PaymentProtocolID, len(outputs))

	return &PaymentIntent{
		Standard:           StandardBIP70,
		PayeeName:          payeeName,
		PayeeOrganization:  payeeOrganization,
		PayeeVerifiedBy:    payeeVerifiedBy,
		Outputs:            outputs,
		Memo:               memo,
		PaymentURL:         paymentURL,
		MerchantData:       details.MerchantData,
		PaymentRequestHash: requestHash[:],
	}, nil
}

// isSupportedPaymentURL returns whether the URL parses and uses one of
// the schemes the configured network supports.
func (v *Validator) isSupportedPaymentURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	for _, scheme := range v.cfg.Params.SupportedPaymentURLSchemes {
		if strings.EqualFold(parsed.Scheme, scheme) {
			return true
		}
	}
	return false
}
