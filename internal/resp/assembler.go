package resp

import "reflect"

// assemble walks a flat frame list once and folds it into an ordered
// sequence of top-level Values, recursing into aggregate headers to gather
// their declared child count. If an aggregate header requests more
// children than remain in the frame list, that aggregate (and everything
// after it in the current call) is silently discarded: no value is
// emitted for it, and assembly of the top-level list stops there. This
// mirrors the reference codec, which never spans a partially-arrived
// aggregate across two Parse calls.
func assemble(frames []frame) []Value {
	idx := 0
	var out []Value
	for idx < len(frames) {
		v, ok := assembleOne(frames, &idx)
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// prealloc bounds a wire-declared child count against the frames actually
// remaining, so a hostile aggregate header (n near math.MaxInt64) can't
// crash make() before the underrun check below even runs.
func prealloc(n, remaining int) int {
	if remaining < 0 {
		return 0
	}
	if n > remaining {
		return remaining
	}
	return n
}

func assembleOne(frames []frame, idx *int) (Value, bool) {
	if *idx >= len(frames) {
		return nil, false
	}
	f := frames[*idx]
	*idx++

	switch f.kind {
	case frameSimpleString:
		return SimpleString{Text: f.text}, true
	case frameError:
		return ErrorReply{Code: f.code, Message: f.message}, true
	case frameBlobError:
		return ErrorReply{Code: f.code, Message: f.message}, true
	case frameInteger:
		return Integer{Int: f.i64}, true
	case frameBigInteger:
		return BigInteger{Int: f.big}, true
	case frameDouble:
		return Double{Float: f.f64}, true
	case frameBoolean:
		return Boolean{Bool: f.boolean}, true
	case frameNull, frameNullAggregate:
		return Null{}, true
	case frameBlobString:
		return BlobString{Bytes: f.blob}, true
	case frameVerbatimString:
		return VerbatimString{Format: f.format, Text: f.text}, true
	case frameArrayHeader:
		return assembleArray(frames, idx, f.n)
	case frameMapHeader:
		return assembleMap(frames, idx, f.n)
	case frameSetHeader:
		return assembleSet(frames, idx, f.n)
	default:
		return nil, false
	}
}

func assembleArray(frames []frame, idx *int, n int) (Value, bool) {
	values := make([]Value, 0, prealloc(n, len(frames)-*idx))
	for i := 0; i < n; i++ {
		v, ok := assembleOne(frames, idx)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return Array{Values: values}, true
}

func assembleMap(frames []frame, idx *int, n int) (Value, bool) {
	pairs := make([]Pair, 0, prealloc(n, len(frames)-*idx))
	for i := 0; i < n; i++ {
		k, ok := assembleOne(frames, idx)
		if !ok {
			return nil, false
		}
		v, ok := assembleOne(frames, idx)
		if !ok {
			return nil, false
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return Map{Pairs: pairs}, true
}

func assembleSet(frames []frame, idx *int, n int) (Value, bool) {
	values := make([]Value, 0, prealloc(n, len(frames)-*idx))
	for i := 0; i < n; i++ {
		v, ok := assembleOne(frames, idx)
		if !ok {
			return nil, false
		}
		if !containsValue(values, v) {
			values = append(values, v)
		}
	}
	return Set{Values: values}, true
}

// containsValue reports whether v is structurally equal to any element
// already in values. Sets are typically small enough that the pairwise
// scan is cheaper than building a canonical hash key for arbitrary,
// possibly-nested Values.
func containsValue(values []Value, v Value) bool {
	for _, existing := range values {
		if reflect.DeepEqual(existing, v) {
			return true
		}
	}
	return false
}
