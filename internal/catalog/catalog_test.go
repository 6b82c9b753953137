package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archignome/tgboy/internal/storage"
)

// stubGateway serves canned plan rows; ordering is the store's job, so the
// stub just honors the requested column like the real gateway would.
type stubGateway struct {
	rows []storage.Row
	err  error
}

func (s *stubGateway) SelectAll(_ context.Context, table string, opts storage.SelectOpts) ([]storage.Row, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubGateway) SelectOne(_ context.Context, table string, filter storage.Filter) (storage.Row, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r["id"] == filter["id"] {
			return r, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *stubGateway) Insert(context.Context, string, storage.Row) (storage.Row, error) {
	panic("catalog never writes")
}

func (s *stubGateway) Update(context.Context, string, storage.Filter, storage.Row) (storage.Row, error) {
	panic("catalog never writes")
}

func TestList(t *testing.T) {
	gw := &stubGateway{rows: []storage.Row{
		{"id": "p1", "name": "Basic", "price": int32(999), "details": "Fast", "locations": []any{"NL", "US"}},
		{"id": "p2", "name": "Pro", "price": int32(1999)},
	}}
	svc := &Service{GW: gw}

	plans, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, Plan{ID: "p1", Name: "Basic", PriceCents: 999, Details: "Fast", Locations: []string{"NL", "US"}}, plans[0])
	assert.Equal(t, "p2", plans[1].ID)
	assert.Equal(t, 1999, plans[1].PriceCents)
	assert.Nil(t, plans[1].Locations)
}

func TestList_EmptyCatalog(t *testing.T) {
	svc := &Service{GW: &stubGateway{}}
	plans, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestGet(t *testing.T) {
	gw := &stubGateway{rows: []storage.Row{
		{"id": "p1", "name": "Basic", "price": int32(999)},
	}}
	svc := &Service{GW: gw}

	p, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Basic", p.Name)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, storage.IsNotFound(err))
}

func TestGet_EmptyID(t *testing.T) {
	svc := &Service{GW: &stubGateway{}}
	_, err := svc.Get(context.Background(), "")
	assert.True(t, storage.IsValidation(err))
}

func TestList_StorageError(t *testing.T) {
	boom := &storage.StorageError{Op: "select", Table: Table, Err: errors.New("conn refused")}
	svc := &Service{GW: &stubGateway{err: boom}}

	_, err := svc.List(context.Background())
	var se *storage.StorageError
	assert.True(t, errors.As(err, &se))
	assert.False(t, storage.IsNotFound(err))
}
