// SPDX-License-Identifier: MIT
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thatcatcamp/lpsite/internal/content"
)

func testPlan() content.PricingPlanCopy {
	return content.PricingPlanCopy{
		ID:    "growth",
		Title: "Growth",
		Billing: content.PlanBilling{
			Monthly: content.PlanPrice{Price: "€99", Detail: "monthly"},
			Yearly:  content.PlanPrice{Price: "€79", Detail: "yearly", SubPrice: "€948 / year"},
		},
		SingleUser: content.SingleUserPrice{Monthly: "€9", Yearly: "€7"},
		Features:   []string{"a", "b"},
	}
}

func TestBillingDefaultsToMonthly(t *testing.T) {
	assert.Equal(t, content.Monthly, Billing{}.Active())
	assert.Equal(t, content.Monthly, ParseBilling("").Active())
	assert.Equal(t, content.Monthly, ParseBilling("weekly").Active())
	assert.Equal(t, content.Yearly, ParseBilling("yearly").Active())
}

func TestBillingToggleAndSelect(t *testing.T) {
	b := Billing{}
	assert.Equal(t, content.Yearly, b.Toggle().Active())
	assert.Equal(t, content.Monthly, b.Toggle().Toggle().Active())
	assert.Equal(t, content.Yearly, b.Select(content.Yearly).Select(content.Yearly).Active())
}

func TestPlanPriceSwapsOnlyPriceFields(t *testing.T) {
	plan := testPlan()
	before := testPlan()

	monthly := Billing{}.PlanPrice(plan)
	assert.Equal(t, ActivePrice{Price: "€99", Detail: "monthly", SingleUser: "€9"}, monthly)

	yearly := Billing{}.Toggle().PlanPrice(plan)
	assert.Equal(t, ActivePrice{Price: "€79", Detail: "yearly", SubPrice: "€948 / year", SingleUser: "€7"}, yearly)

	assert.Equal(t, before, plan)
}

func TestSingleUserLabel(t *testing.T) {
	labels := content.SingleUserPrice{Monthly: "per month", Yearly: "per year"}
	assert.Equal(t, "per month", Billing{}.SingleUserLabel(labels))
	assert.Equal(t, "per year", ParseBilling("yearly").SingleUserLabel(labels))
}
