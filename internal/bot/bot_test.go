package bot

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/present"
	"github.com/archignome/tgboy/internal/storage"
)

func TestToKeyboard(t *testing.T) {
	kb := toKeyboard([][]present.Button{
		{{Label: "Basic - $9.99", Action: "view:p1"}},
		{{Label: "ℹ️ View Details", Action: "view:p1"}, {Label: "💳 Buy Now", Action: "buy:p1"}},
	})

	require.Len(t, kb.InlineKeyboard, 2)
	require.Len(t, kb.InlineKeyboard[0], 1)
	require.Len(t, kb.InlineKeyboard[1], 2)

	assert.Equal(t, "Basic - $9.99", kb.InlineKeyboard[0][0].Text)
	require.NotNil(t, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "view:p1", *kb.InlineKeyboard[0][0].CallbackData)
	require.NotNil(t, kb.InlineKeyboard[1][1].CallbackData)
	assert.Equal(t, "buy:p1", *kb.InlineKeyboard[1][1].CallbackData)
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, "", mediaKind(&tgbotapi.Message{Text: "hello"}))
	assert.Equal(t, "photo", mediaKind(&tgbotapi.Message{Photo: []tgbotapi.PhotoSize{{}}}))
	assert.Equal(t, "document", mediaKind(&tgbotapi.Message{Document: &tgbotapi.Document{}}))
	assert.Equal(t, "voice message", mediaKind(&tgbotapi.Message{Voice: &tgbotapi.Voice{}}))
	assert.Equal(t, "contact", mediaKind(&tgbotapi.Message{Contact: &tgbotapi.Contact{}}))
}

type memGateway struct {
	tables map[string][]storage.Row
}

func newMemGateway() *memGateway {
	return &memGateway{tables: map[string][]storage.Row{}}
}

func (m *memGateway) SelectAll(_ context.Context, table string, opts storage.SelectOpts) ([]storage.Row, error) {
	out := make([]storage.Row, 0)
	for _, r := range m.tables[table] {
		if rowMatches(r, opts.Filter) {
			out = append(out, r)
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memGateway) SelectOne(ctx context.Context, table string, filter storage.Filter) (storage.Row, error) {
	rows, err := m.SelectAll(ctx, table, storage.SelectOpts{Filter: filter, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrNotFound
	}
	return rows[0], nil
}

func (m *memGateway) Insert(_ context.Context, table string, record storage.Row) (storage.Row, error) {
	m.tables[table] = append(m.tables[table], record)
	return record, nil
}

func (m *memGateway) Update(_ context.Context, table string, filter storage.Filter, patch storage.Row) (storage.Row, error) {
	for i, r := range m.tables[table] {
		if rowMatches(r, filter) {
			for k, v := range patch {
				r[k] = v
			}
			m.tables[table][i] = r
			return r, nil
		}
	}
	return nil, storage.ErrNotFound
}

func rowMatches(r storage.Row, filter storage.Filter) bool {
	for k, v := range filter {
		if r[k] != v {
			return false
		}
	}
	return true
}

func newBuyBot(t *testing.T, gw storage.Gateway) *Bot {
	t.Helper()
	mr := miniredis.RunT(t)
	return &Bot{
		Catalog: &catalog.Service{GW: gw},
		Orders:  &orders.Service{GW: gw},
		Redis:   redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
}

func seedPlan(gw *memGateway) {
	gw.tables[catalog.Table] = []storage.Row{{
		"id": "p1", "name": "Basic", "price": 999, "details": "Fast",
	}}
}

func TestPlaceOrderSwallowsDoubleTap(t *testing.T) {
	gw := newMemGateway()
	seedPlan(gw)
	b := newBuyBot(t, gw)
	ctx := context.Background()

	order, dup, err := b.placeOrder(ctx, "u1", "alice", "p1")
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, "Basic", order.ConfigName)

	_, dup, err = b.placeOrder(ctx, "u1", "alice", "p1")
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Len(t, gw.tables[orders.Table], 1)
}

func TestPlaceOrderFailureLeavesGuardUnarmed(t *testing.T) {
	gw := newMemGateway()
	b := newBuyBot(t, gw)
	ctx := context.Background()

	// plan does not exist yet, the attempt fails
	_, dup, err := b.placeOrder(ctx, "u1", "alice", "p1")
	assert.False(t, dup)
	assert.True(t, storage.IsNotFound(err))

	// the failed tap must not lock the user out of retrying
	seedPlan(gw)
	_, dup, err = b.placeOrder(ctx, "u1", "alice", "p1")
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Len(t, gw.tables[orders.Table], 1)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Unknown", displayName(nil))
	assert.Equal(t, "Unknown", displayName(&tgbotapi.User{}))
	assert.Equal(t, "alice", displayName(&tgbotapi.User{UserName: "alice", FirstName: "Alice"}))
	assert.Equal(t, "Alice", displayName(&tgbotapi.User{FirstName: "Alice"}))
}
