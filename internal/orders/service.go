package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/storage"
)

// Service owns order creation, per-user listing and status transitions.
// Now and NewID are injectable for tests and default to the real clock and
// random uuids.
type Service struct {
	GW    storage.Gateway
	Now   func() time.Time
	NewID func() string
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Create records a purchase of the given plan, snapshotting its commercial
// terms. Status starts at pending; CreatedAt and UpdatedAt coincide.
func (s *Service) Create(ctx context.Context, userID, username string, plan catalog.Plan) (Order, error) {
	if userID == "" {
		return Order{}, &storage.ValidationError{Field: "user id", Reason: "empty"}
	}
	if plan.ID == "" {
		return Order{}, &storage.ValidationError{Field: "plan id", Reason: "empty"}
	}
	if username == "" {
		username = "Unknown"
	}

	now := s.now()
	o := Order{
		ID:            s.newID(),
		UserID:        userID,
		Username:      username,
		ConfigID:      plan.ID,
		ConfigName:    plan.Name,
		ConfigDetails: plan.Details,
		PriceCents:    plan.PriceCents,
		Status:        Pending(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.GW.Insert(ctx, Table, toRow(o))
	if err != nil {
		return Order{}, err
	}
	return fromRow(inserted), nil
}

// CreateFromRecord is the admin-facing creation path. It tolerates both
// field-naming conventions, fills defaults and persists a canonical record.
func (s *Service) CreateFromRecord(ctx context.Context, rec map[string]any) (Order, error) {
	canon := NormalizeRecord(rec)

	str := func(k string) string {
		v, _ := canon[k].(string)
		return v
	}
	userID := str("userid")
	if userID == "" {
		return Order{}, &storage.ValidationError{Field: "userid", Reason: "missing"}
	}
	configID := str("configid")
	if configID == "" {
		return Order{}, &storage.ValidationError{Field: "configid", Reason: "missing"}
	}

	username := str("username")
	if username == "" {
		username = "Unknown"
	}
	status := str("status")
	if status == "" {
		status = StatePending
	}
	price := 0
	switch v := canon["price"].(type) {
	case int:
		price = v
	case float64:
		price = int(v)
	}
	if price < 0 {
		return Order{}, &storage.ValidationError{Field: "price", Reason: "negative"}
	}

	now := s.now()
	o := Order{
		ID:            s.newID(),
		UserID:        userID,
		Username:      username,
		ConfigID:      configID,
		ConfigName:    str("configname"),
		ConfigDetails: str("configdetails"),
		PriceCents:    price,
		Status:        ParseStatus(status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.GW.Insert(ctx, Table, toRow(o))
	if err != nil {
		return Order{}, err
	}
	return fromRow(inserted), nil
}

// ListForUser returns the user's orders, most recently touched first. A
// user with no orders gets an empty slice.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, &storage.ValidationError{Field: "user id", Reason: "empty"}
	}
	rows, err := s.GW.SelectAll(ctx, Table, storage.SelectOpts{
		Filter:  storage.Filter{"userid": userID},
		OrderBy: &storage.OrderBy{Column: "updatedat", Desc: true},
	})
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	if id == "" {
		return Order{}, &storage.ValidationError{Field: "order id", Reason: "empty"}
	}
	row, err := s.GW.SelectOne(ctx, Table, storage.Filter{"id": id})
	if err != nil {
		return Order{}, err
	}
	return fromRow(row), nil
}

// UpdateStatus replaces the status wholesale with operator-supplied text and
// refreshes UpdatedAt. CreatedAt is never touched.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Order, error) {
	if id == "" {
		return Order{}, &storage.ValidationError{Field: "order id", Reason: "empty"}
	}
	if status == "" {
		return Order{}, &storage.ValidationError{Field: "status", Reason: "empty"}
	}
	return s.patchStatus(ctx, id, ParseStatus(status))
}

// UpdatePaymentStatus marks the order paid with the given payment sub-state.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) (Order, error) {
	if id == "" {
		return Order{}, &storage.ValidationError{Field: "order id", Reason: "empty"}
	}
	if paymentStatus == "" {
		return Order{}, &storage.ValidationError{Field: "payment status", Reason: "empty"}
	}
	return s.patchStatus(ctx, id, Paid(paymentStatus))
}

func (s *Service) patchStatus(ctx context.Context, id string, st Status) (Order, error) {
	row, err := s.GW.Update(ctx, Table, storage.Filter{"id": id}, storage.Row{
		"status":    st.Wire(),
		"updatedat": s.now(),
	})
	if err != nil {
		return Order{}, err
	}
	return fromRow(row), nil
}
