// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/lpsite/internal/themes"
)

const (
	// Layout scale shared by every theme
	SpacingXS   = "4px"
	SpacingSM   = "8px"
	SpacingBase = "16px"
	SpacingMD   = "24px"
	SpacingLG   = "40px"
	MaxWidth    = "1200px"
)

// ServeThemeCSS serves the palette variables of ?theme= followed by the
// shared layout rules. Unknown themes fall back to the default theme.
func ServeThemeCSS(c *gin.Context) {
	theme := themes.ResolveOrDefault(c.Query("theme"))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8",
		[]byte(themes.Stylesheet(theme)+GetLayoutCSS()))
}

// Returns the layout stylesheet for landing, legal and not-found pages
func GetLayoutCSS() string {
	return `
:root {
	--spacing-xs: ` + SpacingXS + `;
	--spacing-sm: ` + SpacingSM + `;
	--spacing-base: ` + SpacingBase + `;
	--spacing-md: ` + SpacingMD + `;
	--spacing-lg: ` + SpacingLG + `;
	--max-width: ` + MaxWidth + `;
	--radius-sm: 4px;
	--radius-base: 8px;
	--shadow-sm: 0 1px 3px rgba(0, 0, 0, 0.1);
	--transition: 200ms ease;
}

* { box-sizing: border-box; }

body {
	margin: 0;
	padding: 0;
	line-height: 1.5;
}

h1 { font-size: 44px; font-weight: 700; margin: 0 0 var(--spacing-base); }
h2 { font-size: 32px; font-weight: 700; margin: 0 0 var(--spacing-base); }
h3 { font-size: 20px; font-weight: 600; margin: 0 0 var(--spacing-sm); }

.container {
	max-width: var(--max-width);
	margin: 0 auto;
}

.container.split {
	display: grid;
	grid-template-columns: 1fr 1fr;
	gap: var(--spacing-lg);
	align-items: center;
}

.eyebrow {
	text-transform: uppercase;
	letter-spacing: 0.08em;
	font-size: 13px;
	font-weight: 600;
	color: var(--color-primary);
}

.subtitle, .helper, .footer-note {
	color: var(--color-text-muted);
}

.btn.secondary {
	background: transparent;
	color: var(--color-primary);
	border: 1px solid var(--color-primary);
}

/* Navbar */
.navbar {
	background: var(--color-surface);
	border-bottom: 1px solid var(--color-border);
	position: sticky;
	top: 0;
	z-index: 100;
	box-shadow: var(--shadow-sm);
	padding: var(--spacing-base) var(--spacing-lg);
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.navbar .brand {
	font-size: 20px;
	font-weight: 700;
	color: var(--color-text);
}

.nav-links {
	display: flex;
	gap: var(--spacing-lg);
	align-items: center;
}

.nav-links a {
	color: var(--color-text-muted);
	font-weight: 500;
	transition: color var(--transition);
}

.nav-links a:hover { color: var(--color-primary); }

.locale-toggle {
	font-weight: 600;
	text-transform: uppercase;
}

.menu-toggle { display: none; }

/* Hero */
.hero { text-align: center; }
.hero .actions {
	display: flex;
	gap: var(--spacing-base);
	justify-content: center;
	margin-top: var(--spacing-md);
}

.social-proof .logos {
	display: flex;
	flex-wrap: wrap;
	gap: var(--spacing-lg);
	justify-content: center;
	color: var(--color-text-muted);
}

.icon {
	display: inline-block;
	width: 32px;
	height: 32px;
	border-radius: var(--radius-sm);
	background: var(--color-primary);
	margin-bottom: var(--spacing-sm);
}

/* Steps */
.steps {
	list-style: none;
	padding: 0;
	display: grid;
	gap: var(--spacing-md);
}

.step-number {
	display: inline-block;
	font-weight: 700;
	color: var(--color-primary);
	margin-right: var(--spacing-sm);
}

/* Metrics */
.metric strong {
	display: block;
	font-size: 40px;
	font-weight: 700;
	color: var(--color-primary);
}

/* Carousels */
.carousel-controls {
	display: flex;
	gap: var(--spacing-sm);
	justify-content: flex-end;
	margin-top: var(--spacing-base);
}

.testimonial .person { color: var(--color-text-muted); }

.outcomes {
	display: flex;
	gap: var(--spacing-md);
}

.outcomes strong {
	display: block;
	font-size: 24px;
	color: var(--color-primary);
}

/* Pricing */
.billing-toggle {
	display: inline-flex;
	gap: var(--spacing-xs);
	padding: var(--spacing-xs);
	border: 1px solid var(--color-border);
	border-radius: 999px;
	margin-bottom: var(--spacing-md);
}

.billing-toggle a {
	padding: var(--spacing-xs) var(--spacing-base);
	border-radius: 999px;
}

.billing-toggle a[aria-pressed="true"] {
	background: var(--color-primary);
	color: var(--color-primary-contrast);
}

.pricing-card .badge {
	display: inline-block;
	background: var(--color-primary);
	color: var(--color-primary-contrast);
	border-radius: 999px;
	padding: 2px 10px;
	font-size: 12px;
}

.price {
	font-size: 36px;
	font-weight: 700;
}

.price-detail, .sub-price, .single-user {
	color: var(--color-text-muted);
	font-size: 14px;
}

/* Final call to action */
.final-cta {
	text-align: center;
	background: var(--color-primary);
	color: var(--color-primary-contrast);
}

.final-cta .btn {
	background: var(--color-primary-contrast);
	color: var(--color-primary);
}

/* Legal and not-found pages */
.legal {
	max-width: 800px;
	margin: 0 auto;
}

.legal-section { margin-bottom: var(--spacing-lg); }

.not-found {
	max-width: 600px;
	margin: 100px auto;
	padding: var(--spacing-base);
	text-align: center;
}

.not-found h1 {
	font-size: 72px;
	color: var(--color-error);
}

/* Footer */
.footer {
	border-top: 1px solid var(--color-border);
	padding: var(--spacing-md) var(--spacing-lg);
	color: var(--color-text-muted);
	font-size: 14px;
	display: flex;
	justify-content: space-between;
	flex-wrap: wrap;
	gap: var(--spacing-base);
}

/* Mobile Responsive */
@media (max-width: 767px) {
	h1 { font-size: 32px; }

	.container.split { grid-template-columns: 1fr; }

	.menu-toggle { display: inline-block; }

	.nav-links { display: none; }

	.nav-links.open {
		display: flex;
		flex-direction: column;
		position: absolute;
		top: 100%;
		left: 0;
		right: 0;
		background: var(--color-surface);
		padding: var(--spacing-base);
	}

	.grid-cols-2, .grid-cols-3, .grid-cols-4 { grid-template-columns: 1fr; }
}
`
}
