package orders

// Upstream callers have historically used two naming conventions for the
// same order fields (snake_case and the flattened column names). The aliases
// are coalesced here, at the boundary, so the internal model and the store
// see exactly one name per field. The canonical name wins when both appear.
var fieldAliases = map[string]string{
	"user_id":        "userid",
	"config_id":      "configid",
	"config_name":    "configname",
	"config_details": "configdetails",
	"created_at":     "createdat",
	"updated_at":     "updatedat",
}

// NormalizeRecord rewrites aliased keys to their canonical form. The input
// map is not modified.
func NormalizeRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		canon, aliased := fieldAliases[k]
		if !aliased {
			out[k] = v
			continue
		}
		if _, exists := rec[canon]; exists {
			continue // canonical spelling wins
		}
		out[canon] = v
	}
	return out
}
