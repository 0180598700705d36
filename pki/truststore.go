package pki

import (
	"crypto/x509"
)

// TrustStore supplies the set of root certificates a verified chain may
// anchor to. The store's contents are policy owned by the caller; this
// package only consults it.
type TrustStore interface {
	// RootBySubject returns the trusted root certificate whose raw DER
	// subject equals rawSubject, or nil when no such root is trusted.
	RootBySubject(rawSubject []byte) *x509.Certificate
}

// TrustStoreFunc is an adapter allowing an ordinary function to be used
// as a TrustStore.
type TrustStoreFunc func(rawSubject []byte) *x509.Certificate

// RootBySubject delegates to the wrapped function.
func (f TrustStoreFunc) RootBySubject(rawSubject []byte) *x509.Certificate {
	return f(rawSubject)
}

// InMemoryTrustStore is a TrustStore backed by a map keyed on the raw
// subject of each root. It is immutable after construction and safe for
// concurrent use.
type InMemoryTrustStore struct {
	roots map[string]*x509.Certificate
}

// NewInMemoryTrustStore creates a trust store holding the given roots.
// When two roots share a subject, the later one wins.
func NewInMemoryTrustStore(roots []*x509.Certificate) *InMemoryTrustStore {
	store := &InMemoryTrustStore{roots: make(map[string]*x509.Certificate, len(roots))}
	for _, root := range roots {
		store.roots[string(root.RawSubject)] = root
	}
	return store
}

// RootBySubject returns the trusted root with the given raw subject, or
// nil. Part of the TrustStore interface.
func (s *InMemoryTrustStore) RootBySubject(rawSubject []byte) *x509.Certificate {
	return s.roots[string(rawSubject)]
}
