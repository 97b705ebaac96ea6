package buffer

import "encoding/json"

// Snapshot is the field-for-field serializable form of a Buffer, for
// embedding a field in larger persisted state (JSON or TOML).
type Snapshot struct {
	Value  string `json:"value" toml:"value"`
	Cursor int    `json:"cursor" toml:"cursor"`
}

// Snapshot captures the buffer's current state.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{Value: b.Value(), Cursor: b.cursor}
}

// FromSnapshot rebuilds a buffer. An out-of-range cursor is clamped.
func FromSnapshot(s Snapshot) *Buffer {
	return New(s.Value).WithCursor(s.Cursor)
}

// MarshalJSON implements json.Marshaler.
func (b Buffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Buffer) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = *FromSnapshot(s)
	return nil
}
