// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"time"
)

// CA directory names certmagic uses under {certDir}/certificates
var caDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus returns the status of all managed certificates
func (m *Manager) GetCertificateStatus() []CertificateStatus {
	return ReadCertificateStatus(m.cfg.CertDir, m.GetAllowedDomains())
}

// ReadCertificateStatus reads the stored certificates of domains from
// certDir. Domains without a readable certificate are left out.
func ReadCertificateStatus(certDir string, domains []string) []CertificateStatus {
	var statuses []CertificateStatus

	for _, domain := range domains {
		certPath := findCertificate(certDir, domain)
		if certPath == "" {
			// not yet provisioned
			continue
		}

		certPEM, err := os.ReadFile(certPath)
		if err != nil {
			continue
		}

		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		statuses = append(statuses, CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		})
	}

	return statuses
}

// findCertificate returns the production certificate path, then staging,
// or "" when neither exists.
func findCertificate(certDir, domain string) string {
	for _, ca := range caDirs {
		p := filepath.Join(certDir, "certificates", ca, domain, domain+".crt")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
