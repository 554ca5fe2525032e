// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"go.uber.org/zap"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	logger    *zap.Logger
	certmagic *certmagic.Config
}

// NewManager creates a new TLS manager and starts managing the configured
// domains in the background.
func NewManager(ctx context.Context, cfg *Config, logger *zap.Logger) (*Manager, error) {
	m, err := newManager(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := m.RefreshDomains(ctx); err != nil {
		return nil, fmt.Errorf("failed to load domains: %w", err)
	}

	return m, nil
}

func newManager(cfg *Config, logger *zap.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return &certmagic.Default, nil
		},
		Logger: logger.Named("certmagic"),
	})

	magicCfg := certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
		Logger:  logger.Named("certmagic"),
	})

	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	magicCfg.Issuers = []certmagic.Issuer{
		certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
			CA:     ca,
			Email:  cfg.Email,
			Agreed: true,
			Logger: logger.Named("acme"),
		}),
	}

	return &Manager{
		cfg:       cfg,
		logger:    logger,
		certmagic: magicCfg,
	}, nil
}

// GetAllowedDomains returns all domains that should have certificates
func (m *Manager) GetAllowedDomains() []string {
	return m.cfg.AllowedDomains()
}

// RefreshDomains hands the allowed domains to certmagic
func (m *Manager) RefreshDomains(ctx context.Context) error {
	domains := m.GetAllowedDomains()
	if len(domains) == 0 {
		return fmt.Errorf("no domains configured")
	}

	m.logger.Info("managing certificates",
		zap.Int("count", len(domains)),
		zap.Strings("domains", domains))

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}

	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}

// HTTPChallengeHandler wraps next so ACME HTTP-01 challenges are answered
// on the plain HTTP listener.
func (m *Manager) HTTPChallengeHandler(next http.Handler) http.Handler {
	for _, issuer := range m.certmagic.Issuers {
		if am, ok := issuer.(*certmagic.ACMEIssuer); ok {
			return am.HTTPChallengeHandler(next)
		}
	}
	return next
}
