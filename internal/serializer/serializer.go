package serializer

import (
	"fmt"
	"strings"
)

// Serializer is a pluggable byte-transform applied to a decoded blob
// payload before display, e.g. gunzipping a BlobString that was written
// through gzip on the way in.
type Serializer interface {
	Serialize([]byte) ([]byte, error)
	Deserialize([]byte) ([]byte, error)
}

// Get returns the Serializer registered under name, or an error if none
// matches.
func Get(name string) (Serializer, error) {
	switch strings.ToLower(name) {
	case "base64":
		return pipeBase64{}, nil
	case "gzip":
		return pipeGzip{}, nil
	case "snappy":
		return pipeSnappy{}, nil
	default:
		return nil, fmt.Errorf("unknown serializer: %q", name)
	}
}
