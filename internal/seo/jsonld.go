// SPDX-License-Identifier: MIT
package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// WebPage returns a WebPage schema in the given language.
func WebPage(name, description, url, inLanguage string) map[string]any {
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebPage",
		"name":       name,
		"inLanguage": inLanguage,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// Question is one FAQ entry
type Question struct {
	Question string
	Answer   string
}

// FAQPage builds schema.org FAQPage. It returns nil when there are no questions.
func FAQPage(questions []Question) map[string]any {
	if len(questions) == 0 {
		return nil
	}
	el := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  q.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  q.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}
