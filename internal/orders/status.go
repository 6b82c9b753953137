package orders

import "strings"

// Status keeps lifecycle state and payment sub-state apart in memory. The
// store still carries the legacy single column, where a paid order is the
// composite "paid:<sub>" and everything else (canonical "pending" or
// operator-assigned free text) is the state verbatim.
type Status struct {
	State        string
	PaymentState string
}

const (
	StatePending = "pending"
	StatePaid    = "paid"

	paidPrefix = "paid:"
)

func Pending() Status {
	return Status{State: StatePending}
}

func Paid(sub string) Status {
	return Status{State: StatePaid, PaymentState: sub}
}

func (s Status) IsPaid() bool { return s.State == StatePaid }

// Wire encodes the status for the single persisted column. The paid prefix
// appears only when a payment sub-state is actually carried, so a bare
// "paid" status stays verbatim.
func (s Status) Wire() string {
	if s.State == StatePaid && s.PaymentState != "" {
		return paidPrefix + s.PaymentState
	}
	return s.State
}

// ParseStatus decodes the persisted column. Operator free text round-trips
// untouched through State; only a non-empty sub-state after the prefix is
// treated as the composite form.
func ParseStatus(raw string) Status {
	if sub, ok := strings.CutPrefix(raw, paidPrefix); ok && sub != "" {
		return Status{State: StatePaid, PaymentState: sub}
	}
	return Status{State: raw}
}
