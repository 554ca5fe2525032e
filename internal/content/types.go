// SPDX-License-Identifier: MIT
package content

import "github.com/thatcatcamp/lpsite/internal/shell"

// HeroCopy is the hero section copy
type HeroCopy struct {
	Eyebrow           string `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Title             string `json:"title" yaml:"title"`
	Subtitle          string `json:"subtitle" yaml:"subtitle"`
	PrimaryCTALabel   string `json:"primaryCtaLabel" yaml:"primaryCtaLabel"`
	SecondaryCTALabel string `json:"secondaryCtaLabel,omitempty" yaml:"secondaryCtaLabel,omitempty"`
}

// SocialProofCopy labels the customer logo strip
type SocialProofCopy struct {
	Label string   `json:"label,omitempty" yaml:"label,omitempty"`
	Logos []string `json:"logos,omitempty" yaml:"logos,omitempty"`
}

// Item is a titled paragraph used by several list sections.
// IconKey selects the icon; items without one render without an icon.
type Item struct {
	Eyebrow string `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Title   string `json:"title" yaml:"title"`
	Body    string `json:"body" yaml:"body"`
	IconKey string `json:"iconKey,omitempty" yaml:"iconKey,omitempty"`
}

// ListCopy is the shape shared by value props, features, use cases and security
type ListCopy struct {
	Eyebrow  string `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Heading  string `json:"heading" yaml:"heading"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Items    []Item `json:"items" yaml:"items"`
}

// DeepDiveCopy is a step-by-step walkthrough section
type DeepDiveCopy struct {
	Eyebrow  string `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Heading  string `json:"heading" yaml:"heading"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Steps    []Item `json:"steps" yaml:"steps"`
}

// Integration is one named tool in the integrations grid
type Integration struct {
	Name string `json:"name" yaml:"name"`
}

// IntegrationsCopy is the integrations section copy
type IntegrationsCopy struct {
	Eyebrow      string        `json:"eyebrow,omitempty" yaml:"eyebrow,omitempty"`
	Heading      string        `json:"heading" yaml:"heading"`
	Subtitle     string        `json:"subtitle" yaml:"subtitle"`
	Integrations []Integration `json:"integrations" yaml:"integrations"`
}

// Metric is a single headline number
type Metric struct {
	Value       string `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// MetricsCopy is the metrics section copy
type MetricsCopy struct {
	Heading  string   `json:"heading" yaml:"heading"`
	Subtitle string   `json:"subtitle" yaml:"subtitle"`
	Metrics  []Metric `json:"metrics" yaml:"metrics"`
}

// Outcome is a value/label pair shown next to a testimonial
type Outcome struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// TestimonialCopy accepts both the legacy quote shape (quote, name, role,
// metric) and the case-study shape (customer, outcome, description,
// outcomes, modules). Customer is "company · person".
type TestimonialCopy struct {
	Quote  string `json:"quote,omitempty" yaml:"quote,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Metric string `json:"metric,omitempty" yaml:"metric,omitempty"`

	Customer    string    `json:"customer,omitempty" yaml:"customer,omitempty"`
	Outcome     string    `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Outcomes    []Outcome `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	Modules     []string  `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// GoogleReviews is the optional review badge next to the testimonials heading
type GoogleReviews struct {
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Stars     string `json:"stars,omitempty" yaml:"stars,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// CarouselNavigation labels the previous/next controls
type CarouselNavigation struct {
	Previous string `json:"previous,omitempty" yaml:"previous,omitempty"`
	Next     string `json:"next,omitempty" yaml:"next,omitempty"`
}

// TestimonialsCopy is the testimonials section copy
type TestimonialsCopy struct {
	Heading          string              `json:"heading" yaml:"heading"`
	Subtitle         string              `json:"subtitle" yaml:"subtitle"`
	UsedModulesLabel string              `json:"usedModulesLabel,omitempty" yaml:"usedModulesLabel,omitempty"`
	GoogleReviews    *GoogleReviews      `json:"googleReviews,omitempty" yaml:"googleReviews,omitempty"`
	Navigation       *CarouselNavigation `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	Testimonials     []TestimonialCopy   `json:"testimonials" yaml:"testimonials"`
}

// BillingMode selects which price set a plan shows
type BillingMode string

const (
	Monthly BillingMode = "monthly"
	Yearly  BillingMode = "yearly"
)

// PlanPrice is the price block for one billing mode
type PlanPrice struct {
	Price    string `json:"price" yaml:"price"`
	Detail   string `json:"detail" yaml:"detail"`
	SubPrice string `json:"subPrice,omitempty" yaml:"subPrice,omitempty"`
}

// PlanBilling keys the price blocks by billing mode
type PlanBilling struct {
	Monthly PlanPrice `json:"monthly" yaml:"monthly"`
	Yearly  PlanPrice `json:"yearly" yaml:"yearly"`
}

// SingleUserPrice holds the per-mode single user price strings
type SingleUserPrice struct {
	Monthly string `json:"monthly" yaml:"monthly"`
	Yearly  string `json:"yearly" yaml:"yearly"`
}

// PricingPlanCopy is one pricing card. Identity fields do not depend on the billing mode.
type PricingPlanCopy struct {
	ID         string          `json:"id" yaml:"id"`
	Title      string          `json:"title" yaml:"title"`
	Body       string          `json:"body" yaml:"body"`
	Billing    PlanBilling     `json:"billing" yaml:"billing"`
	Features   []string        `json:"features" yaml:"features"`
	SingleUser SingleUserPrice `json:"singleUser" yaml:"singleUser"`
	CTALabel   string          `json:"ctaLabel" yaml:"ctaLabel"`
	IsPopular  bool            `json:"isPopular,omitempty" yaml:"isPopular,omitempty"`
}

// BillingToggleCopy labels the monthly/yearly switch
type BillingToggleCopy struct {
	Label       string `json:"label" yaml:"label"`
	Monthly     string `json:"monthly" yaml:"monthly"`
	Yearly      string `json:"yearly" yaml:"yearly"`
	YearlyBadge string `json:"yearlyBadge,omitempty" yaml:"yearlyBadge,omitempty"`
}

// PricingCopy is the pricing section copy
type PricingCopy struct {
	Heading          string             `json:"heading" yaml:"heading"`
	Subtitle         string             `json:"subtitle" yaml:"subtitle"`
	Helper           string             `json:"helper,omitempty" yaml:"helper,omitempty"`
	SingleUserLabel  string             `json:"singleUserLabel,omitempty" yaml:"singleUserLabel,omitempty"`
	SingleUserTitle  string             `json:"singleUserTitle,omitempty" yaml:"singleUserTitle,omitempty"`
	BillingToggle    *BillingToggleCopy `json:"billingToggle,omitempty" yaml:"billingToggle,omitempty"`
	SingleUserLabels *SingleUserPrice   `json:"singleUserLabels,omitempty" yaml:"singleUserLabels,omitempty"`
	FooterNote       string             `json:"footerNote,omitempty" yaml:"footerNote,omitempty"`
	Plans            []PricingPlanCopy  `json:"plans" yaml:"plans"`
}

// FAQItem is one question and answer
type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FAQCopy is the FAQ section copy
type FAQCopy struct {
	Heading  string    `json:"heading" yaml:"heading"`
	Subtitle string    `json:"subtitle" yaml:"subtitle"`
	Items    []FAQItem `json:"items" yaml:"items"`
}

// FinalCTACopy is the closing call to action
type FinalCTACopy struct {
	Heading  string `json:"heading" yaml:"heading"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	CTALabel string `json:"ctaLabel" yaml:"ctaLabel"`
}

// PageCopy is the complete copy of one landing page in one locale.
// Hero, SocialProof, ValueProps, Features and FinalCTA are mandatory;
// the pointer sections may be absent and are defaulted by the sections package.
type PageCopy struct {
	Hero         HeroCopy          `json:"hero" yaml:"hero"`
	SocialProof  SocialProofCopy   `json:"socialProof" yaml:"socialProof"`
	ValueProps   ListCopy          `json:"valueProps" yaml:"valueProps"`
	Features     ListCopy          `json:"features" yaml:"features"`
	DeepDive     *DeepDiveCopy     `json:"deepDive,omitempty" yaml:"deepDive,omitempty"`
	UseCases     *ListCopy         `json:"useCases,omitempty" yaml:"useCases,omitempty"`
	Integrations *IntegrationsCopy `json:"integrations,omitempty" yaml:"integrations,omitempty"`
	Security     *ListCopy         `json:"security,omitempty" yaml:"security,omitempty"`
	Metrics      *MetricsCopy      `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Testimonials *TestimonialsCopy `json:"testimonials,omitempty" yaml:"testimonials,omitempty"`
	Pricing      *PricingCopy      `json:"pricing,omitempty" yaml:"pricing,omitempty"`
	FAQ          *FAQCopy          `json:"faq,omitempty" yaml:"faq,omitempty"`
	FinalCTA     FinalCTACopy      `json:"finalCta" yaml:"finalCta"`

	Navbar *shell.NavbarLabels `json:"navbar,omitempty" yaml:"navbar,omitempty"`
	Footer *shell.FooterLabels `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// LegalSection is an optionally headed run of paragraphs
type LegalSection struct {
	Heading    string   `json:"heading,omitempty" yaml:"heading,omitempty"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

// LegalContent wraps the ordered legal sections
type LegalContent struct {
	Sections []LegalSection `json:"sections" yaml:"sections"`
}

// LegalPageCopy is the copy of a privacy or impressum page
type LegalPageCopy struct {
	Title   string       `json:"title" yaml:"title"`
	Content LegalContent `json:"content" yaml:"content"`
}
