package serializer

import (
	"fmt"

	"github.com/golang/snappy"
)

// pipeSnappy implements the "snappy" --pipe transform: it recovers the
// original bytes of a BlobString or VerbatimString payload that was
// snappy-compressed before being written into a RESP frame.
type pipeSnappy struct{}

func (pipeSnappy) Serialize(payload []byte) ([]byte, error) {
	return snappy.Encode(nil, payload), nil
}

// Deserialize reads the decoded length out of the snappy frame header
// first, so a payload that isn't actually snappy-compressed (e.g. the
// wrong --pipe flag against a plain BlobString) is reported as a decode
// error naming the payload size, rather than an opaque snappy error.
func (pipeSnappy) Deserialize(payload []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(payload)
	if err != nil {
		return nil, fmt.Errorf("%d-byte payload has no valid snappy header: %w", len(payload), err)
	}

	decoded, err := snappy.Decode(make([]byte, 0, n), payload)
	if err != nil {
		return nil, fmt.Errorf("snappy decode of %d-byte payload: %w", len(payload), err)
	}
	return decoded, nil
}
