package resp

import "fmt"

// ProtocolError is returned by Parse when the buffered bytes prove a frame
// malformed: an unrecognised type byte at a frame-start position, or a
// complete-but-invalid numeric/boolean/verbatim payload. It is fatal for
// the connection the caller is decoding on.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "resp: protocol error: " + e.Msg }

func protocolErrorf(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}

// EncodeArgumentError is returned by Encode when an argument is neither a
// string nor an integer.
type EncodeArgumentError struct {
	Value interface{}
}

func (e *EncodeArgumentError) Error() string {
	return fmt.Sprintf("resp: encode argument has unsupported type %T", e.Value)
}
