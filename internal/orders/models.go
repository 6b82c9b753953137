package orders

import (
	"time"

	"github.com/archignome/tgboy/internal/storage"
)

const Table = "orders"

// Order is a durable record of a user's intent to purchase a plan.
// ConfigID/ConfigName/ConfigDetails/PriceCents are snapshots of the plan's
// terms at creation time and are never re-derived from the catalog, so
// history stays stable when a plan is edited or removed.
type Order struct {
	ID            string
	UserID        string
	Username      string
	ConfigID      string
	ConfigName    string
	ConfigDetails string
	PriceCents    int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromRow(r storage.Row) Order {
	return Order{
		ID:            storage.Str(r, "id"),
		UserID:        storage.Str(r, "userid"),
		Username:      storage.Str(r, "username"),
		ConfigID:      storage.Str(r, "configid"),
		ConfigName:    storage.Str(r, "configname"),
		ConfigDetails: storage.Str(r, "configdetails"),
		PriceCents:    storage.Int(r, "price"),
		Status:        ParseStatus(storage.Str(r, "status")),
		CreatedAt:     storage.Time(r, "createdat"),
		UpdatedAt:     storage.Time(r, "updatedat"),
	}
}

func toRow(o Order) storage.Row {
	return storage.Row{
		"id":            o.ID,
		"userid":        o.UserID,
		"username":      o.Username,
		"configid":      o.ConfigID,
		"configname":    o.ConfigName,
		"configdetails": o.ConfigDetails,
		"price":         o.PriceCents,
		"status":        o.Status.Wire(),
		"createdat":     o.CreatedAt,
		"updatedat":     o.UpdatedAt,
	}
}
