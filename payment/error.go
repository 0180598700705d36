package payment

import (
	"fmt"

	"github.com/payproto/payproto/wire"
)

// RuleError identifies a payment request that failed validation. It is
// used to indicate that processing failed due to one of the protocol's
// validation rules rather than a programming error. The wrapped error is
// one of the Err* types of this package; use errors.As to determine which
// rule was violated and access its fields.
type RuleError struct {
	Err error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.Err == nil {
		return "<nil>"
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped rule violation.
func (e RuleError) Unwrap() error {
	return e.Err
}

// ruleError wraps a rule violation in a RuleError.
func ruleError(err error) RuleError {
	return RuleError{Err: err}
}

// ErrOversizedRequest indicates a serialized payment request exceeds the
// maximum allowed size. It is raised before any decoding is attempted.
type ErrOversizedRequest struct {
	Size int
}

func (e ErrOversizedRequest) Error() string {
	return fmt.Sprintf("payment request is %d bytes, maximum is %d",
		e.Size, wire.MaxPaymentRequestSize)
}

// ErrMalformedRequest indicates a message failed to decode. The wrapped
// codec error distinguishes malformed framing (wire.ErrMalformed) from a
// structurally incomplete message (wire.ErrIncomplete).
type ErrMalformedRequest struct {
	Err error
}

func (e ErrMalformedRequest) Error() string {
	return fmt.Sprintf("cannot decode payment request: %s", e.Err)
}

// Unwrap returns the underlying codec error.
func (e ErrMalformedRequest) Unwrap() error {
	return e.Err
}

// ErrUntrustedRequest indicates the request declared a PKI type but its
// certificate chain or signature failed verification.
type ErrUntrustedRequest struct {
	Err error
}

func (e ErrUntrustedRequest) Error() string {
	return fmt.Sprintf("payment request cannot be trusted: %s", e.Err)
}

// Unwrap returns the underlying verification error.
func (e ErrUntrustedRequest) Unwrap() error {
	return e.Err
}

// ErrUnsupportedVersion indicates the request declared a payment details
// version other than the supported version 1. Version carries the
// offending value; an undeclared version is reported as zero.
type ErrUnsupportedVersion struct {
	Version uint32
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("cannot handle payment details version %d", e.Version)
}

// ErrExpired indicates the request's expiry time has passed. Both
// timestamps are epoch seconds; the request fails when Now is at or after
// Expires.
type ErrExpired struct {
	Now     uint64
	Expires uint64
}

func (e ErrExpired) Error() string {
	return fmt.Sprintf("payment request expired: current time %d is at or "+
		"after expiry time %d", e.Now, e.Expires)
}

// ErrWrongNetwork indicates the request was built for a network other
// than the one the validator is configured for.
type ErrWrongNetwork struct {
	Network string
}

func (e ErrWrongNetwork) Error() string {
	return fmt.Sprintf("cannot handle payment request network %q", e.Network)
}

// ErrInvalidOutputs indicates an output of the request carries a script
// the script collaborator cannot parse. Index names the offending output;
// the whole request is rejected.
type ErrInvalidOutputs struct {
	Index int
	Err   error
}

func (e ErrInvalidOutputs) Error() string {
	return fmt.Sprintf("unparseable script in output %d: %s", e.Index, e.Err)
}

// Unwrap returns the underlying script error.
func (e ErrInvalidOutputs) Unwrap() error {
	return e.Err
}

// ErrUnsupportedPaymentURL indicates the request carries a payment URL
// with a scheme this deployment does not support.
type ErrUnsupportedPaymentURL struct {
	URL string
}

func (e ErrUnsupportedPaymentURL) Error() string {
	return fmt.Sprintf("cannot handle payment url %q", e.URL)
}
