package resp

import "bytes"

// Codec owns a private receive buffer and turns raw bytes written to it
// into an ordered sequence of parsed Values. It is not safe for concurrent
// use: an enclosing connection must serialise Write and Parse against each
// other, and two Codecs never share state.
type Codec struct {
	buf bytes.Buffer
}

// New returns an empty Codec ready to accept Write calls.
func New() *Codec {
	return &Codec{}
}

// Write appends chunk to the receive buffer. It never fails and never
// blocks; the codec performs no I/O of its own.
func (c *Codec) Write(chunk []byte) {
	c.buf.Write(chunk)
}

// Parse consumes the receive buffer and returns every top-level Value that
// could be fully assembled from it, in the order their frames appeared.
// Bytes belonging to an incomplete trailing frame are retained for the
// next Write+Parse cycle. If the buffered bytes prove a frame malformed,
// Parse returns a *ProtocolError and discards the buffer: the caller
// should treat this as fatal for the underlying connection.
func (c *Codec) Parse() ([]Value, error) {
	data := c.buf.Bytes()
	frames, tail, err := scan(data)
	if err != nil {
		c.buf.Reset()
		return nil, err
	}

	values := assemble(frames)

	if len(tail) == 0 {
		c.buf.Reset()
		return values, nil
	}

	// Copy the tail out before Reset invalidates data's backing array.
	retained := make([]byte, len(tail))
	copy(retained, tail)
	c.buf.Reset()
	c.buf.Write(retained)
	return values, nil
}

// Encode renders args as a RESP command invocation. It does not touch the
// receive buffer; it is a pure function of its arguments.
func (c *Codec) Encode(args ...interface{}) ([]byte, error) {
	return Encode(args...)
}

// Buffered reports how many bytes are currently held in the receive
// buffer, i.e. the size of the incomplete trailing frame retained by the
// last Parse call (zero right after a Parse that consumed everything).
func (c *Codec) Buffered() int {
	return c.buf.Len()
}
