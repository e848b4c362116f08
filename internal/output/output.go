// Package output pretty-prints decoded resp.Values for the respcodec CLI,
// mirroring redis-cli's per-kind rendering with optional ANSI colors.
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cosmez/respcodec/internal/resp"
	"github.com/cosmez/respcodec/internal/serializer"
	"github.com/fatih/color"
)

// PrintOpts configures how a Value is printed.
type PrintOpts struct {
	Color      bool
	Serializer serializer.Serializer // applied to blob/verbatim payloads before display
	Padding    string
	Newline    bool
}

var (
	colorSimpleString = color.New(color.FgHiBlue)
	colorBlobString    = color.New(color.FgHiCyan)
	colorVerbatim      = color.New(color.FgCyan)
	colorInteger       = color.New(color.FgHiGreen)
	colorBigInteger    = color.New(color.FgGreen)
	colorDouble        = color.New(color.FgHiMagenta)
	colorBoolean       = color.New(color.FgMagenta)
	colorError         = color.New(color.FgRed, color.Bold)
	colorNull          = color.New(color.FgHiBlack)
	colorIndex         = color.New(color.FgHiBlack)
	colorKey           = color.New(color.FgYellow)
)

// digitWidth returns the number of digits in n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}

func printColored(w io.Writer, text string, c *color.Color, useColor bool) {
	if useColor {
		c.Fprint(w, text)
	} else {
		fmt.Fprint(w, text)
	}
}

func deserialize(opts PrintOpts, payload []byte) string {
	if opts.Serializer != nil {
		if out, err := opts.Serializer.Deserialize(payload); err == nil {
			return string(out)
		}
	}
	return string(payload)
}

// PrintValue renders v to w, recursing into aggregates with indentation
// modeled on redis-cli's array output: right-aligned indices, nested
// aggregates indented under their parent's index column.
func PrintValue(w io.Writer, v resp.Value, opts PrintOpts) {
	if v == nil {
		return
	}

	switch val := v.(type) {
	case resp.Array:
		printAggregate(w, opts, len(val.Values), func(i int, childOpts PrintOpts) {
			PrintValue(w, val.Values[i], childOpts)
		})
	case resp.Set:
		printAggregate(w, opts, len(val.Values), func(i int, childOpts PrintOpts) {
			PrintValue(w, val.Values[i], childOpts)
		})
	case resp.Map:
		printMap(w, val, opts)
	default:
		text, c := scalarText(val, opts)
		printColored(w, text, c, opts.Color)
		if opts.Newline {
			fmt.Fprintln(w)
		}
	}
}

func printAggregate(w io.Writer, opts PrintOpts, n int, printChild func(i int, childOpts PrintOpts)) {
	if n == 0 {
		printColored(w, "(empty aggregate)", colorNull, opts.Color)
		if opts.Newline {
			fmt.Fprintln(w)
		}
		return
	}

	digits := digitWidth(n)
	idxWidth := digits + 2

	for i := 0; i < n; i++ {
		idxStr := fmt.Sprintf("%*d) ", digits, i+1)
		if i > 0 {
			fmt.Fprint(w, opts.Padding)
		}
		printColored(w, idxStr, colorIndex, opts.Color)

		childOpts := opts
		childOpts.Padding = opts.Padding + strings.Repeat(" ", idxWidth)
		childOpts.Newline = true
		printChild(i, childOpts)
	}
}

func printMap(w io.Writer, m resp.Map, opts PrintOpts) {
	if len(m.Pairs) == 0 {
		printColored(w, "(empty map)", colorNull, opts.Color)
		if opts.Newline {
			fmt.Fprintln(w)
		}
		return
	}

	digits := digitWidth(len(m.Pairs))
	idxWidth := digits + 2
	for i, pair := range m.Pairs {
		idxStr := fmt.Sprintf("%*d) ", digits, i+1)
		if i > 0 {
			fmt.Fprint(w, opts.Padding)
		}
		printColored(w, idxStr, colorIndex, opts.Color)

		keyOpts := opts
		keyOpts.Newline = false
		keyOpts.Padding = opts.Padding + strings.Repeat(" ", idxWidth)
		if kv, ok := pair.Key.(resp.SimpleString); ok {
			printColored(w, kv.Text, colorKey, opts.Color)
		} else {
			PrintValue(w, pair.Key, keyOpts)
		}
		fmt.Fprint(w, " => ")

		valOpts := opts
		valOpts.Newline = true
		valOpts.Padding = opts.Padding + strings.Repeat(" ", idxWidth)
		PrintValue(w, pair.Value, valOpts)
	}
}

func scalarText(v resp.Value, opts PrintOpts) (string, *color.Color) {
	switch val := v.(type) {
	case resp.SimpleString:
		return val.Text, colorSimpleString
	case resp.BlobString:
		return fmt.Sprintf("%q", deserialize(opts, val.Bytes)), colorBlobString
	case resp.VerbatimString:
		return fmt.Sprintf("%q", deserialize(opts, []byte(val.Text))), colorVerbatim
	case resp.Integer:
		return fmt.Sprintf("(integer) %d", val.Int), colorInteger
	case resp.BigInteger:
		return fmt.Sprintf("(big number) %s", val.Int.String()), colorBigInteger
	case resp.Double:
		return fmt.Sprintf("(double) %s", formatDouble(val.Float)), colorDouble
	case resp.Boolean:
		if val.Bool {
			return "(true)", colorBoolean
		}
		return "(false)", colorBoolean
	case resp.Null:
		return "(nil)", colorNull
	case resp.ErrorReply:
		if val.Message == "" {
			return "(error) " + val.Code, colorError
		}
		return "(error) " + val.Code + " " + val.Message, colorError
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
