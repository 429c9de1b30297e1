package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Metadata is a free-form key/value annotation bag stored as JSONB.
// Keys are validated only by the edges that care about them
// (e.g. the payment webhook looks up "charge_id").
type Metadata map[string]any

// Value implements driver.Valuer for JSONB columns.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB columns.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported metadata source type")
	}
}

// String returns the value under key if it is a string, or "".
func (m Metadata) String(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
