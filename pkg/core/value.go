package core

import (
	"strconv"
	"strings"
)

// Kind discriminates the closed set of header value shapes an MGF
// producer can emit for a single KEY=VALUE line.
type Kind int

const (
	// KindText is a raw string value, kept exactly as read.
	KindText Kind = iota
	// KindNumber is a single floating-point value.
	KindNumber
	// KindNumberList is a short ordered sequence of floats, e.g. the
	// "mz intensity" pair of a PEPMASS line.
	KindNumberList
)

// Value is one header field value. Header values are polymorphic across
// MGF producers (scalar, string, or a short numeric sequence); modeling
// them as a closed variant keeps the extraction logic exhaustively
// testable instead of relying on runtime type switches.
type Value struct {
	kind Kind
	text string
	num  float64
	nums []float64
}

// Text wraps a raw string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps a single float value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// NumberList wraps an ordered sequence of floats.
func NumberList(fs ...float64) Value {
	return Value{kind: KindNumberList, nums: fs}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// First collapses a sequence value to its first element; scalar values
// pass through unchanged. An empty sequence reports ok=false.
func (v Value) First() (Value, bool) {
	if v.kind != KindNumberList {
		return v, true
	}
	if len(v.nums) == 0 {
		return Value{}, false
	}
	return Number(v.nums[0]), true
}

// Float coerces the value to a single float64:
//   - number list: element 0
//   - text: split on commas and whitespace, parse the first token
//   - number: used directly
//
// ok is false when the value has no usable numeric interpretation.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindNumberList:
		if len(v.nums) == 0 {
			return 0, false
		}
		return v.nums[0], true
	default:
		toks := strings.Fields(strings.ReplaceAll(v.text, ",", " "))
		if len(toks) == 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(toks[0], 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

// String renders the value the way it would appear in a report: text
// verbatim, numbers in shortest decimal form, sequences space-joined.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatFloat(v.num)
	case KindNumberList:
		parts := make([]string, len(v.nums))
		for i, f := range v.nums {
			parts[i] = FormatFloat(f)
		}
		return strings.Join(parts, " ")
	default:
		return v.text
	}
}

// Params is an insertion-ordered header map. Order matters: when a file
// carries several case variants of the same logical key, downstream
// extraction must see them in the order the producer wrote them. An
// exactly-repeated key keeps its first value.
type Params struct {
	keys   []string
	values map[string]Value
}

// Set records a key/value pair. Repeats of an identical key are ignored.
func (p *Params) Set(key string, v Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; ok {
		return
	}
	p.keys = append(p.keys, key)
	p.values[key] = v
}

// Get looks up a key by exact spelling.
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the distinct header keys in insertion order.
func (p *Params) Keys() []string {
	return p.keys
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.keys)
}
