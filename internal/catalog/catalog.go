package catalog

import (
	"context"

	"github.com/archignome/tgboy/internal/storage"
)

const Table = "plans"

// Plan is one purchasable VPN configuration. Rows are created and edited
// through an administrative path; this service only reads them.
type Plan struct {
	ID         string
	Name       string
	PriceCents int
	Details    string
	Locations  []string
}

type Service struct {
	GW storage.Gateway
}

// List returns the catalog ordered by ascending price. An empty catalog is
// an empty slice, not an error.
func (s *Service) List(ctx context.Context) ([]Plan, error) {
	rows, err := s.GW.SelectAll(ctx, Table, storage.SelectOpts{
		OrderBy: &storage.OrderBy{Column: "price"},
	})
	if err != nil {
		return nil, err
	}
	plans := make([]Plan, 0, len(rows))
	for _, r := range rows {
		plans = append(plans, fromRow(r))
	}
	return plans, nil
}

// Get resolves a plan id. A deleted or mistyped id is storage.ErrNotFound,
// a normal outcome the caller renders as a fallback.
func (s *Service) Get(ctx context.Context, id string) (Plan, error) {
	if id == "" {
		return Plan{}, &storage.ValidationError{Field: "plan id", Reason: "empty"}
	}
	row, err := s.GW.SelectOne(ctx, Table, storage.Filter{"id": id})
	if err != nil {
		return Plan{}, err
	}
	return fromRow(row), nil
}

func fromRow(r storage.Row) Plan {
	return Plan{
		ID:         storage.Str(r, "id"),
		Name:       storage.Str(r, "name"),
		PriceCents: storage.Int(r, "price"),
		Details:    storage.Str(r, "details"),
		Locations:  storage.Strs(r, "locations"),
	}
}
