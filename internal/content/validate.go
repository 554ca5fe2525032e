// SPDX-License-Identifier: MIT
package content

import (
	"errors"
	"strings"
)

var (
	ErrMissingHero        = errors.New("missing hero")
	ErrMissingSocialProof = errors.New("missing socialProof")
	ErrMissingValueProps  = errors.New("missing valueProps")
	ErrMissingFeatures    = errors.New("missing features")
	ErrMissingFinalCTA    = errors.New("missing finalCta")
	ErrMissingLegalTitle  = errors.New("missing title")
)

// ValidatePage checks that every mandatory section is present
func ValidatePage(p PageCopy) error {
	var errs []error
	if blank(p.Hero.Title) {
		errs = append(errs, ErrMissingHero)
	}
	if blank(p.SocialProof.Label) && len(p.SocialProof.Logos) == 0 {
		errs = append(errs, ErrMissingSocialProof)
	}
	if blank(p.ValueProps.Heading) {
		errs = append(errs, ErrMissingValueProps)
	}
	if blank(p.Features.Heading) {
		errs = append(errs, ErrMissingFeatures)
	}
	if blank(p.FinalCTA.Heading) {
		errs = append(errs, ErrMissingFinalCTA)
	}
	return errors.Join(errs...)
}

// ValidateLegalPage checks that a legal page has a title
func ValidateLegalPage(p LegalPageCopy) error {
	if blank(p.Title) {
		return ErrMissingLegalTitle
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
