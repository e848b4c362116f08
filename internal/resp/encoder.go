package resp

import (
	"bytes"
	"strconv"
)

// Encode renders args as a RESP array of bulk strings, the wire form used
// to invoke a Redis command. Each argument must be a string or one of Go's
// built-in integer types; anything else yields an *EncodeArgumentError.
func Encode(args ...interface{}) ([]byte, error) {
	rendered := make([][]byte, len(args))
	for i, arg := range args {
		b, err := renderArg(arg)
		if err != nil {
			return nil, err
		}
		rendered[i] = b
	}

	var buf bytes.Buffer
	buf.WriteByte('*')
	buf.WriteString(strconv.Itoa(len(rendered)))
	buf.WriteString("\r\n")
	for _, b := range rendered {
		buf.WriteByte('$')
		buf.WriteString(strconv.Itoa(len(b)))
		buf.WriteString("\r\n")
		buf.Write(b)
		buf.WriteString("\r\n")
	}
	return buf.Bytes(), nil
}

func renderArg(arg interface{}) ([]byte, error) {
	switch v := arg.(type) {
	case string:
		return []byte(v), nil
	case int:
		return []byte(strconv.Itoa(v)), nil
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	default:
		return nil, &EncodeArgumentError{Value: arg}
	}
}
