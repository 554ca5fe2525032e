// SPDX-License-Identifier: MIT
package state

import "github.com/thatcatcamp/lpsite/internal/content"

// Billing is the pricing toggle. The zero value is monthly.
type Billing struct {
	Mode content.BillingMode
}

// ParseBilling reads a billing mode, anything unknown is monthly
func ParseBilling(raw string) Billing {
	if content.BillingMode(raw) == content.Yearly {
		return Billing{Mode: content.Yearly}
	}
	return Billing{Mode: content.Monthly}
}

// Active returns the selected mode
func (b Billing) Active() content.BillingMode {
	if b.Mode == content.Yearly {
		return content.Yearly
	}
	return content.Monthly
}

// Select switches to mode. Selecting the current mode is a no-op.
func (b Billing) Select(mode content.BillingMode) Billing {
	if mode == content.Yearly {
		return Billing{Mode: content.Yearly}
	}
	return Billing{Mode: content.Monthly}
}

// Toggle switches to the other mode
func (b Billing) Toggle() Billing {
	if b.Active() == content.Yearly {
		return b.Select(content.Monthly)
	}
	return b.Select(content.Yearly)
}

// ActivePrice is what a pricing card shows for the current mode
type ActivePrice struct {
	Price      string
	Detail     string
	SubPrice   string
	SingleUser string
}

// PlanPrice picks the active price block and single-user price of plan.
// The plan itself is not touched.
func (b Billing) PlanPrice(plan content.PricingPlanCopy) ActivePrice {
	if b.Active() == content.Yearly {
		return ActivePrice{
			Price:      plan.Billing.Yearly.Price,
			Detail:     plan.Billing.Yearly.Detail,
			SubPrice:   plan.Billing.Yearly.SubPrice,
			SingleUser: plan.SingleUser.Yearly,
		}
	}
	return ActivePrice{
		Price:      plan.Billing.Monthly.Price,
		Detail:     plan.Billing.Monthly.Detail,
		SubPrice:   plan.Billing.Monthly.SubPrice,
		SingleUser: plan.SingleUser.Monthly,
	}
}

// SingleUserLabel picks the mode-specific single-user label
func (b Billing) SingleUserLabel(labels content.SingleUserPrice) string {
	if b.Active() == content.Yearly {
		return labels.Yearly
	}
	return labels.Monthly
}
