package resp

import (
	"math/big"
	"reflect"
	"testing"
)

func mustScan(t *testing.T, input string) []frame {
	t.Helper()
	frames, tail, err := scan([]byte(input))
	if err != nil {
		t.Fatalf("scan(%q) error: %v", input, err)
	}
	if len(tail) != 0 {
		t.Fatalf("scan(%q) left tail %q", input, tail)
	}
	return frames
}

func TestAssembleLeafValues(t *testing.T) {
	frames := mustScan(t, "+OK\r\n:5\r\n$3\r\nfoo\r\n_\r\n#t\r\n")
	values := assemble(frames)
	want := []Value{
		SimpleString{Text: "OK"},
		Integer{Int: 5},
		BlobString{Bytes: []byte("foo")},
		Null{},
		Boolean{Bool: true},
	}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleArray(t *testing.T) {
	frames := mustScan(t, "*3\r\n:1\r\n:2\r\n:3\r\n")
	values := assemble(frames)
	want := []Value{Array{Values: []Value{
		Integer{Int: 1}, Integer{Int: 2}, Integer{Int: 3},
	}}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleNestedArray(t *testing.T) {
	frames := mustScan(t, "*2\r\n*1\r\n:1\r\n*1\r\n:2\r\n")
	values := assemble(frames)
	want := []Value{Array{Values: []Value{
		Array{Values: []Value{Integer{Int: 1}}},
		Array{Values: []Value{Integer{Int: 2}}},
	}}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleMapPreservesOrderAndDuplicates(t *testing.T) {
	frames := mustScan(t, "%2\r\n+a\r\n:1\r\n+a\r\n:2\r\n")
	values := assemble(frames)
	want := []Value{Map{Pairs: []Pair{
		{Key: SimpleString{Text: "a"}, Value: Integer{Int: 1}},
		{Key: SimpleString{Text: "a"}, Value: Integer{Int: 2}},
	}}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleSetDeduplicatesFirstWins(t *testing.T) {
	frames := mustScan(t, "~3\r\n+orange\r\n+orange\r\n+apple\r\n")
	values := assemble(frames)
	want := []Value{Set{Values: []Value{
		SimpleString{Text: "orange"}, SimpleString{Text: "apple"},
	}}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleUnderrunAggregateIsDiscarded(t *testing.T) {
	// Array declares 2 children but only 1 primitive frame follows: the
	// whole array is discarded and nothing is emitted for it.
	frames := mustScan(t, "*2\r\n:1\r\n")
	values := assemble(frames)
	if len(values) != 0 {
		t.Errorf("assemble() = %#v, want empty", values)
	}
}

func TestAssembleUnderrunStopsRemainingTopLevel(t *testing.T) {
	// A leading value assembles fine; the trailing underrun aggregate
	// consumes the rest of the frame list and yields nothing.
	frames := mustScan(t, "+OK\r\n*2\r\n:1\r\n")
	values := assemble(frames)
	want := []Value{SimpleString{Text: "OK"}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleHostileAggregateCountIsDiscardedNotAPanic(t *testing.T) {
	// A header can declare an enormous child count without the wire ever
	// supplying that many frames; prealloc must not let make() try to
	// allocate a slice of that capacity.
	frames := mustScan(t, "*9223372036854775807\r\n:1\r\n")
	values := assemble(frames)
	if len(values) != 0 {
		t.Errorf("assemble() = %#v, want empty", values)
	}
}

func TestAssembleBigIntegerAndDouble(t *testing.T) {
	frames := mustScan(t, "(3492890328409238509324850943850943825024385\r\n,3.14\r\n,inf\r\n")
	values := assemble(frames)
	if len(values) != 3 {
		t.Fatalf("got %d values, want 3", len(values))
	}
	bi, ok := values[0].(BigInteger)
	if !ok {
		t.Fatalf("values[0] = %T, want BigInteger", values[0])
	}
	want, _ := new(big.Int).SetString("3492890328409238509324850943850943825024385", 10)
	if bi.Int.Cmp(want) != 0 {
		t.Errorf("BigInteger = %v, want %v", bi.Int, want)
	}
	d, ok := values[1].(Double)
	if !ok || d.Float != 3.14 {
		t.Errorf("values[1] = %#v, want Double{3.14}", values[1])
	}
}

func TestAssembleVerbatimStringDiscardsFormatByDefault(t *testing.T) {
	frames := mustScan(t, "=15\r\ntxt:Some string\r\n")
	values := assemble(frames)
	want := []Value{VerbatimString{Format: "txt", Text: "Some string"}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleErrorValuesAreNotThrown(t *testing.T) {
	frames := mustScan(t, "-ERR unknown command 'foobar'\r\n")
	values := assemble(frames)
	want := []Value{ErrorReply{Code: "ERR", Message: "unknown command 'foobar'"}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleErrorWithoutSpaceHasEmptyMessage(t *testing.T) {
	frames := mustScan(t, "-NOPREFIX\r\n")
	values := assemble(frames)
	want := []Value{ErrorReply{Code: "NOPREFIX", Message: ""}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}

func TestAssembleNullCoalescence(t *testing.T) {
	frames := mustScan(t, "_\r\n$-1\r\n*-1\r\n")
	values := assemble(frames)
	want := []Value{Null{}, Null{}, Null{}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("assemble() = %#v, want %#v", values, want)
	}
}
