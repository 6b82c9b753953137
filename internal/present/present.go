// Package present turns catalog and order records into user-facing text and
// selectable actions. Everything here is pure: no I/O, deterministic output
// for a given input. The transport layer maps Button rows onto its own UI
// primitives.
package present

import (
	"fmt"
	"strings"
	"time"

	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/orders"
)

// Button is one selectable choice: a label plus an opaque action id the
// transport dispatches back into the bot.
type Button struct {
	Label  string
	Action string
}

// Action ids understood by the dispatch layer.
const (
	ActionShowPlans = "show_plans"
	ActionNoPlans   = "no_plans"

	viewPrefix = "view:"
	buyPrefix  = "buy:"
)

func ViewAction(planID string) string { return viewPrefix + planID }
func BuyAction(planID string) string  { return buyPrefix + planID }

// ParseAction splits an action id into its verb and argument.
func ParseAction(action string) (verb, arg string) {
	if id, ok := strings.CutPrefix(action, viewPrefix); ok {
		return "view", id
	}
	if id, ok := strings.CutPrefix(action, buyPrefix); ok {
		return "buy", id
	}
	return action, ""
}

// FormatPrice renders integer minor units with fixed two-decimal formatting.
// Money never passes through floating point.
func FormatPrice(cents int) string {
	if cents < 0 {
		cents = 0
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Catalog produces two rows per plan, in catalog order: a full-width label
// row opening the detail view, then a detail/buy pair.
func Catalog(plans []catalog.Plan) [][]Button {
	if len(plans) == 0 {
		return [][]Button{{{Label: "No VPN plans available", Action: ActionNoPlans}}}
	}
	rows := make([][]Button, 0, 2*len(plans))
	for _, p := range plans {
		rows = append(rows, []Button{
			{Label: p.Name + " - " + FormatPrice(p.PriceCents), Action: ViewAction(p.ID)},
		})
		rows = append(rows, []Button{
			{Label: "ℹ️ View Details", Action: ViewAction(p.ID)},
			{Label: "💳 Buy Now", Action: BuyAction(p.ID)},
		})
	}
	return rows
}

func PlanDetail(p catalog.Plan) string {
	details := p.Details
	if details == "" {
		details = "No additional details available."
	}
	var b strings.Builder
	b.WriteString("📋 VPN Plan Details\n\n")
	fmt.Fprintf(&b, "🔒 Name: %s\n", p.Name)
	fmt.Fprintf(&b, "💰 Price: %s\n", FormatPrice(p.PriceCents))
	fmt.Fprintf(&b, "📝 Description: %s\n", details)
	if len(p.Locations) > 0 {
		fmt.Fprintf(&b, "📍 Locations: %s\n", strings.Join(p.Locations, ", "))
	}
	b.WriteString("\nTo purchase this plan, click the button below:")
	return b.String()
}

func PlanDetailKeyboard(p catalog.Plan) [][]Button {
	return [][]Button{
		{{Label: "💳 Purchase This Plan", Action: BuyAction(p.ID)}},
		{{Label: "« Back to All Plans", Action: ActionShowPlans}},
	}
}

// PlanNotFound is the graceful fallback for a deleted or mistyped plan id;
// it still offers a way back to the catalog.
func PlanNotFound() (string, [][]Button) {
	return "Plan not found. Please try another option.",
		[][]Button{{{Label: "« Back to All Plans", Action: ActionShowPlans}}}
}

// OrderConfirmation is the reply to a successful purchase: snapshotted plan
// terms plus manual payment instructions.
func OrderConfirmation(o orders.Order) string {
	details := o.ConfigDetails
	if details == "" {
		details = "VPN Plan"
	}
	return fmt.Sprintf(`📦 Order Details:

Reference: %s
Name: %s
Details: %s
Price: %s

To complete your order, please send the payment to:
[Your Payment Details Here]

After payment, send a screenshot of the payment to confirm your order.`,
		o.ID, o.ConfigName, details, FormatPrice(o.PriceCents))
}

func OrderSummary(o orders.Order) string {
	name := o.ConfigName
	if name == "" {
		name = "Unknown Plan"
	}
	return fmt.Sprintf(`🔹 Order: %s
Product: %s
Price: %s
Status: %s
Date: %s`,
		o.ID, name, FormatPrice(o.PriceCents), o.Status.Wire(), formatDate(o.UpdatedAt))
}

func OrderList(list []orders.Order) string {
	if len(list) == 0 {
		return "You have no orders yet."
	}
	parts := make([]string, 0, len(list))
	for _, o := range list {
		parts = append(parts, OrderSummary(o))
	}
	return "Your Orders:\n\n" + strings.Join(parts, "\n\n")
}

// OperatorNewOrder is the notification text delivered to the operator for
// every new order.
func OperatorNewOrder(o orders.Order) string {
	return fmt.Sprintf(`🔔 New Order:
Reference: %s
User: @%s (%s)
Product: %s
Price: %s`,
		o.ID, o.Username, o.UserID, o.ConfigName, FormatPrice(o.PriceCents))
}

// OperatorStatusChanged notifies the operator channel about a lifecycle
// transition.
func OperatorStatusChanged(o orders.Order) string {
	return fmt.Sprintf(`🔄 Order Status Changed:
Reference: %s
User: @%s (%s)
Status: %s`,
		o.ID, o.Username, o.UserID, o.Status.Wire())
}

// OperatorForward wraps a forwarded user message or media item with the
// sender's details.
func OperatorForward(kind, userID, name, username, caption string, at time.Time) string {
	if username == "" {
		username = "Not set"
	} else {
		username = "@" + username
	}
	if caption == "" {
		caption = "No caption"
	}
	return fmt.Sprintf(`🔔 New %s received

👤 From User:
ID: %s
Name: %s
Username: %s

📝 %s

⏰ Time: %s`,
		kind, userID, name, username, caption, at.UTC().Format(time.RFC3339))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}
