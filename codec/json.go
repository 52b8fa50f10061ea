package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Reports carry integer values as decimal strings, so any JSON decoder
// reads them back without losing precision beyond 2^53.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
