// Package traefik reads TLS certificates from the acme.json store written by
// the traefik reverse proxy.
package traefik

import (
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

var ErrDomainNotFound = errors.New("domain not found in certificate store")

// CertificateFromFile loads the key pair for domain from the acme store file.
func CertificateFromFile(file, domain string) (tls.Certificate, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("read certificate store: %w", err)
	}
	return Certificate(string(data), domain)
}

// Certificate extracts the key pair for domain. The store holds base64
// encoded PEM data per resolver.
func Certificate(store, domain string) (tls.Certificate, error) {
	certData, keyData, err := lookupDomain(store, domain)
	if err != nil {
		return tls.Certificate{}, err
	}
	certPEM, err := base64.StdEncoding.DecodeString(certData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decode certificate: %w", err)
	}
	keyPEM, err := base64.StdEncoding.DecodeString(keyData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decode key: %w", err)
	}
	return tls.X509KeyPair(certPEM, keyPEM)
}

// lookupDomain searches all resolvers for the first certificate whose main
// domain equals domain.
func lookupDomain(store, domain string) (cert, key string, err error) {
	obj, err := oj.ParseString(store)
	if err != nil {
		return "", "", fmt.Errorf("parse certificate store: %w", err)
	}
	path, err := jp.ParseString(
		fmt.Sprintf(`$..Certificates[?(@.domain.main == %q)]`, domain))
	if err != nil {
		return "", "", err
	}
	res := path.Get(obj)
	if len(res) == 0 {
		return "", "", fmt.Errorf("%w: %s", ErrDomainNotFound, domain)
	}
	entry, ok := res[0].(map[string]any)
	if !ok {
		return "", "", fmt.Errorf("unexpected certificate entry for %s", domain)
	}
	cert, _ = entry["certificate"].(string)
	key, _ = entry["key"].(string)
	return cert, key, nil
}
