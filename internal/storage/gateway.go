package storage

import (
	"context"
	"sort"
	"time"
)

// Row is one record from the table store, keyed by column name.
type Row map[string]any

// Filter matches rows by column equality. All entries must match.
type Filter map[string]any

type OrderBy struct {
	Column string
	Desc   bool
}

type SelectOpts struct {
	Filter  Filter
	OrderBy *OrderBy
	Limit   int
}

// Gateway is the storefront's view of the table store. SelectOne with zero
// matches returns ErrNotFound, never an empty success; any other failure is
// a *StorageError carrying the cause.
type Gateway interface {
	SelectAll(ctx context.Context, table string, opts SelectOpts) ([]Row, error)
	SelectOne(ctx context.Context, table string, filter Filter) (Row, error)
	Insert(ctx context.Context, table string, record Row) (Row, error)
	Update(ctx context.Context, table string, filter Filter, patch Row) (Row, error)
}

// DefaultTimeout bounds every gateway call so a stalled store surfaces as a
// StorageError instead of hanging the request.
const DefaultTimeout = 5 * time.Second

// sortedKeys keeps generated SQL deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
