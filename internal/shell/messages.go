// SPDX-License-Identifier: MIT
package shell

import "github.com/thatcatcamp/lpsite/internal/locale"

// NavbarLinks are the in-page anchor labels shown in the navbar
type NavbarLinks struct {
	Features string `json:"features" yaml:"features"`
	Pricing  string `json:"pricing" yaml:"pricing"`
	UseCases string `json:"useCases" yaml:"useCases"`
	FAQ      string `json:"faq" yaml:"faq"`
}

// NavbarAriaLabels are the accessible names of navbar controls
type NavbarAriaLabels struct {
	GoToHomepage    string `json:"goToHomepage" yaml:"goToHomepage"`
	SwitchToEnglish string `json:"switchToEnglish" yaml:"switchToEnglish"`
	SwitchToGerman  string `json:"switchToGerman" yaml:"switchToGerman"`
	OpenMenu        string `json:"openMenu" yaml:"openMenu"`
	CloseMenu       string `json:"closeMenu" yaml:"closeMenu"`
}

// NavbarLabels holds every string the navbar renders
type NavbarLabels struct {
	Brand      string           `json:"brand" yaml:"brand"`
	Links      NavbarLinks      `json:"links" yaml:"links"`
	CTA        string           `json:"cta" yaml:"cta"`
	AriaLabels NavbarAriaLabels `json:"ariaLabels" yaml:"ariaLabels"`
}

// FooterLinks are the footer navigation labels
type FooterLinks struct {
	Privacy string `json:"privacy" yaml:"privacy"`
	Terms   string `json:"terms" yaml:"terms"`
	Contact string `json:"contact" yaml:"contact"`
}

// FooterLabels holds every string the footer renders
type FooterLabels struct {
	Copyright string      `json:"copyright" yaml:"copyright"`
	Links     FooterLinks `json:"links" yaml:"links"`
}

// Messages is the chrome copy shared by every page of a locale
type Messages struct {
	Navbar NavbarLabels
	Footer FooterLabels
}

var messages = map[locale.Locale]Messages{
	locale.English: {
		Navbar: NavbarLabels{
			Brand: "Logo",
			Links: NavbarLinks{
				Features: "Features",
				Pricing:  "Pricing",
				UseCases: "Use Cases",
				FAQ:      "FAQ",
			},
			CTA: "Get Started",
			AriaLabels: NavbarAriaLabels{
				GoToHomepage:    "Go to homepage",
				SwitchToEnglish: "Switch to English",
				SwitchToGerman:  "Switch to German",
				OpenMenu:        "Open main menu",
				CloseMenu:       "Close main menu",
			},
		},
		Footer: FooterLabels{
			Copyright: "© 2024 Company Name. All rights reserved.",
			Links: FooterLinks{
				Privacy: "Privacy",
				Terms:   "Terms",
				Contact: "Contact",
			},
		},
	},
	locale.German: {
		Navbar: NavbarLabels{
			Brand: "Logo",
			Links: NavbarLinks{
				Features: "Funktionen",
				Pricing:  "Preise",
				UseCases: "Anwendungsfälle",
				FAQ:      "FAQ",
			},
			CTA: "Loslegen",
			AriaLabels: NavbarAriaLabels{
				GoToHomepage:    "Zur Startseite",
				SwitchToEnglish: "Zu Englisch wechseln",
				SwitchToGerman:  "Zu Deutsch wechseln",
				OpenMenu:        "Hauptmenü öffnen",
				CloseMenu:       "Hauptmenü schließen",
			},
		},
		Footer: FooterLabels{
			Copyright: "© 2024 Firmenname. Alle Rechte vorbehalten.",
			Links: FooterLinks{
				Privacy: "Datenschutz",
				Terms:   "Nutzungsbedingungen",
				Contact: "Kontakt",
			},
		},
	},
}

// GetMessages returns the chrome strings for l. Unknown locales get English.
func GetMessages(l locale.Locale) Messages {
	if m, ok := messages[l]; ok {
		return m
	}
	return messages[locale.Default]
}

// SwitchLabel returns the aria label for the control that switches to target
func (n NavbarLabels) SwitchLabel(target locale.Locale) string {
	if target == locale.German {
		return n.AriaLabels.SwitchToGerman
	}
	return n.AriaLabels.SwitchToEnglish
}
