package serializer

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// pipeGzip implements the "gzip" --pipe transform: it recovers the
// original bytes of a BlobString or VerbatimString payload that was
// gzip-compressed before being written into a RESP frame.
type pipeGzip struct{}

func (pipeGzip) Serialize(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	// Not deferred: the footer must be flushed before we read the buffer.
	if _, err := w.Write(payload); err != nil {
		w.Close()
		return nil, fmt.Errorf("gzip write failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip close failed: %w", err)
	}

	return buf.Bytes(), nil
}

func (pipeGzip) Deserialize(payload []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%d-byte payload has no valid gzip header: %w", len(payload), err)
	}
	defer r.Close()

	uncompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decode of %d-byte payload: %w", len(payload), err)
	}

	return uncompressed, nil
}
