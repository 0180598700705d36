// Package pki verifies the certificate chain and detached signature
// embedded in a payment request.
//
// Verification is an explicit step, separate from message construction:
// decoding a request never triggers it. It is a pure function of its
// inputs plus the injected trust store, so callers may invoke it
// concurrently and substitute the trust store freely in tests. There is
// no partial-trust result: any chain-walk failure, untrusted root or
// signature mismatch fails the whole verification.
package pki

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"

	"github.com/pkg/errors"

	"github.com/payproto/payproto/wire"
)

// These sentinel errors classify verification failures beyond plain chain
// or signature mismatches. Match them with errors.Is.
var (
	// ErrUnsupportedPKIType indicates the request declared a PKI type
	// this package does not implement. The sentinel type "none" is not a
	// verifiable type: callers skip verification for it instead.
	ErrUnsupportedPKIType = errors.New("unsupported pki type")

	// ErrNoCertificates indicates the request's pki_data carried no
	// certificates to verify against.
	ErrNoCertificates = errors.New("pki data contains no certificates")

	// ErrUntrustedRoot indicates the certificate chain does not anchor
	// to any root in the trust store.
	ErrUntrustedRoot = errors.New("certificate chain does not anchor to a trusted root")
)

// VerificationData names the merchant a successful verification
// authenticated.
type VerificationData struct {
	// DisplayName is the leaf certificate's subject name: its common
	// name, or its first organization entry when no common name is set.
	DisplayName string

	// Organization is the leaf certificate's first subject organization
	// entry, when present.
	Organization string

	// RootAuthorityName is the display name of the trusted root the
	// chain anchored to.
	RootAuthorityName string
}

// VerifyPaymentRequest verifies the PKI data of the given request against
// the trust store. The request's canonical bytes are recomputed with the
// signature field cleared, per the protocol's signing rules.
func VerifyPaymentRequest(request *wire.PaymentRequest, store TrustStore) (*VerificationData, error) {
	canonical, err := request.SerializeForSignature()
	if err != nil {
		return nil, err
	}
	return Verify(request.GetPKIType(), request.PKIData, canonical, request.Signature, store)
}

// Verify validates the serialized certificate chain in pkiData against
// the trust store and checks the detached signature over the canonical
// request bytes with the leaf certificate's public key. On success it
// returns the names extracted from the leaf and the matched root.
func Verify(pkiType string, pkiData, canonical, signature []byte, store TrustStore) (*VerificationData, error) {
	switch pkiType {
	case wire.PKITypeX509SHA256, wire.PKITypeX509SHA1:
	default:
		return nil, errors.Wrapf(ErrUnsupportedPKIType, "pki type %q", pkiType)
	}

	certs, err := decodeCertificateChain(pkiData)
	if err != nil {
		return nil, err
	}

	// Walk the chain leaf-first: every certificate must be signed by its
	// successor.
	for i := 0; i < len(certs)-1; i++ {
		if err := certs[i].CheckSignatureFrom(certs[i+1]); err != nil {
			return nil, errors.Wrapf(err,
				"certificate %d is not signed by certificate %d", i, i+1)
		}
	}

	root, err := anchorToTrustedRoot(certs[len(certs)-1], store)
	if err != nil {
		return nil, err
	}

	leaf := certs[0]
	algorithm, err := signatureAlgorithm(pkiType, leaf.PublicKey)
	if err != nil {
		return nil, err
	}
	if err := leaf.CheckSignature(algorithm, canonical, signature); err != nil {
		return nil, errors.Wrap(err, "request signature does not verify "+
			"against the leaf certificate")
	}

	displayName, err := certificateDisplayName(leaf)
	if err != nil {
		return nil, err
	}
	rootName, err := certificateDisplayName(root)
	if err != nil {
		return nil, err
	}
	organization := ""
	if len(leaf.Subject.Organization) > 0 {
		organization = leaf.Subject.Organization[0]
	}

	log.Debugf("verified %d certificate chain for %q, anchored at %q",
		len(certs), displayName, rootName)

	return &VerificationData{
		DisplayName:       displayName,
		Organization:      organization,
		RootAuthorityName: rootName,
	}, nil
}

// decodeCertificateChain parses the pki_data message and every DER
// certificate inside it, leaf first.
func decodeCertificateChain(pkiData []byte) ([]*x509.Certificate, error) {
	chain, err := wire.DeserializeX509Certificates(pkiData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode certificate chain")
	}
	if len(chain.Certificate) == 0 {
		return nil, errors.WithStack(ErrNoCertificates)
	}

	certs := make([]*x509.Certificate, len(chain.Certificate))
	for i, der := range chain.Certificate {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse certificate %d", i)
		}
		certs[i] = cert
	}
	return certs, nil
}

// anchorToTrustedRoot checks that the final chain certificate is either
// signed by a root in the trust store or is itself a trusted root, and
// returns the matched root.
func anchorToTrustedRoot(last *x509.Certificate, store TrustStore) (*x509.Certificate, error) {
	if store == nil {
		return nil, errors.WithStack(ErrUntrustedRoot)
	}
	if root := store.RootBySubject(last.RawIssuer); root != nil {
		if err := last.CheckSignatureFrom(root); err != nil {
			return nil, errors.Wrap(err, "final chain certificate is not "+
				"signed by the matching trusted root")
		}
		return root, nil
	}
	if root := store.RootBySubject(last.RawSubject); root != nil && bytes.Equal(root.Raw, last.Raw) {
		return root, nil
	}
	return nil, errors.WithStack(ErrUntrustedRoot)
}

// signatureAlgorithm maps a PKI type and leaf public key to the X.509
// signature algorithm the detached signature must verify under.
func signatureAlgorithm(pkiType string, publicKey interface{}) (x509.SignatureAlgorithm, error) {
	switch publicKey.(type) {
	case *rsa.PublicKey:
		if pkiType == wire.PKITypeX509SHA1 {
			return x509.SHA1WithRSA, nil
		}
		return x509.SHA256WithRSA, nil
	case *ecdsa.PublicKey:
		if pkiType == wire.PKITypeX509SHA1 {
			return x509.ECDSAWithSHA1, nil
		}
		return x509.ECDSAWithSHA256, nil
	default:
		return x509.UnknownSignatureAlgorithm,
			errors.Errorf("leaf certificate has unsupported public key type %T", publicKey)
	}
}

// certificateDisplayName extracts a human-readable name from a
// certificate's subject: the common name, or the first organization entry
// when no common name is set.
func certificateDisplayName(cert *x509.Certificate) (string, error) {
	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName, nil
	}
	if len(cert.Subject.Organization) > 0 {
		return cert.Subject.Organization[0], nil
	}
	return "", errors.Errorf("certificate subject %q has no usable name",
		cert.Subject.String())
}
