// Package codec encodes the self-describing headers of dataset fixtures.
//
// A fixture stores the name of the codec that wrote its header, and readers
// select the codec by that name. Changing the default codec therefore never
// breaks fixtures that are already persisted.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, error) {
	switch name {
	case JSON{}.Name():
		return JSON{}, nil
	case GoJSON{}.Name():
		return GoJSON{}, nil
	default:
		return nil, fmt.Errorf("codec: unknown codec %q", name)
	}
}

// Default is the codec used for newly written fixtures.
var Default Codec = GoJSON{}
