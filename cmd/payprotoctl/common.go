package main

import (
	"crypto/x509"
	"encoding/pem"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/payproto/payproto/pki"
)

// loadTrustStore reads a PEM file of CERTIFICATE blocks into an in-memory
// trust store. An empty path yields an empty store, under which any
// PKI-bearing request fails as untrusted.
func loadTrustStore(path string) (pki.TrustStore, error) {
	var roots []*x509.Certificate
	if path != "" {
		pemBytes, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read trust roots from %s", path)
		}
		for len(pemBytes) > 0 {
			var block *pem.Block
			block, pemBytes = pem.Decode(pemBytes)
			if block == nil {
				break
			}
			if block.Type != "CERTIFICATE" {
				continue
			}
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot parse trust root in %s", path)
			}
			roots = append(roots, cert)
		}
	}
	return pki.NewInMemoryTrustStore(roots), nil
}
