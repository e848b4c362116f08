package serializer

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// pipeBase64 implements the "base64" --pipe transform: it recovers the
// original bytes of a BlobString or VerbatimString payload that was
// base64-encoded before being written into a RESP frame.
type pipeBase64 struct{}

func (pipeBase64) Serialize(payload []byte) ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(payload)), nil
}

// Deserialize accepts both standard and unpadded base64, since a
// BlobString captured verbatim off the wire may have had its trailing
// "=" padding stripped by whatever produced it.
func (pipeBase64) Deserialize(payload []byte) ([]byte, error) {
	text := string(payload)
	if decoded, err := base64.StdEncoding.DecodeString(text); err == nil {
		return decoded, nil
	}

	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(text, "="))
	if err != nil {
		return nil, fmt.Errorf("base64 decode of %d-byte payload: %w", len(payload), err)
	}
	return decoded, nil
}
