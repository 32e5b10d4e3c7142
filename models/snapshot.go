package models

import "encoding/json"

// Snapshot is the opaque, externally produced JSON serialization of the full
// exportable application state. The backup core never interprets it.
type Snapshot string

// Valid reports whether the snapshot is syntactically valid JSON.
func (s Snapshot) Valid() bool {
	return json.Valid([]byte(s))
}
