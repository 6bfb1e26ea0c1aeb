package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	labelIndent = "    "
	valueIndent = "        "
)

// palette colors the parts of a rendered difference. the zero palette leaves
// text as-is
type palette struct {
	first, second, path func(a ...interface{}) string
}

func plainPalette() palette {
	return palette{first: fmt.Sprint, second: fmt.Sprint, path: fmt.Sprint}
}

// colorPalette paints the first-labelled side red, the second green, and
// paths yellow. color is forced on, the caller has already decided the
// output supports it
func colorPalette() palette {
	sprint := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		first:  sprint(color.FgRed),
		second: sprint(color.FgGreen),
		path:   sprint(color.FgYellow),
	}
}

// Render writes a human-readable description of a single difference. for
// unequal values both sides are printed as indented JSON, labelled lhs & rhs
// in Strict mode, or expected & actual otherwise
func Render(d *Difference) string {
	return render(d, plainPalette())
}

// String implements the fmt.Stringer interface
func (d *Difference) String() string {
	return Render(d)
}

func render(d *Difference, p palette) string {
	buf := &bytes.Buffer{}
	path := p.path(d.Path.String())

	switch d.Type {
	case DTMissingFromLeft:
		side := "lhs"
		if d.Mode != Strict {
			side = "actual"
		}
		fmt.Fprintf(buf, "json atom at path \"%s\" is missing from %s", path, side)
	case DTMissingFromRight:
		side := "rhs"
		if d.Mode != Strict {
			side = "expected"
		}
		fmt.Fprintf(buf, "json atom at path \"%s\" is missing from %s", path, side)
	default:
		firstLabel, first, secondLabel, second := "lhs", d.Left, "rhs", d.Right
		if d.Mode != Strict {
			firstLabel, first, secondLabel, second = "expected", d.Right, "actual", d.Left
		}

		fmt.Fprintf(buf, "json atoms at path \"%s\" are not equal:\n", path)
		fmt.Fprintf(buf, "%s%s:\n%s\n", labelIndent, p.first(firstLabel), indent(pretty(first), valueIndent))
		fmt.Fprintf(buf, "%s%s:\n%s", labelIndent, p.second(secondLabel), indent(pretty(second), valueIndent))

		if len(d.Unmatched) > 0 {
			paths := make([]string, len(d.Unmatched))
			for i, idx := range d.Unmatched {
				paths[i] = d.Path.Index(idx).String()
			}
			fmt.Fprintf(buf, "\n%sexpected elements with no match in actual: %s", labelIndent, strings.Join(paths, ", "))
		}

		a, aok := first.AsString()
		b, bok := second.AsString()
		if aok && bok && strings.Contains(a, "\n") && strings.Contains(b, "\n") {
			fmt.Fprintf(buf, "\n%sdiff:\n%s", labelIndent, lineDiff(a, b, p))
		}
	}

	return buf.String()
}

// pretty renders v as JSON indented by two spaces per level
func pretty(v Value) string {
	data, _ := v.MarshalJSON()
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// lineDiff compares two multi-line strings line by line. lines only in a are
// marked "-", lines only in b "+"
func lineDiff(a, b string, p palette) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []string
	for _, d := range diffs {
		marker := "  "
		mark := fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			marker, mark = "- ", p.first
		case diffpatch.DiffInsert:
			marker, mark = "+ ", p.second
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, valueIndent+mark(marker+strings.TrimSuffix(l, "\n")))
		}
	}
	return strings.Join(out, "\n")
}

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(diffs Differences, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, diffs, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one rendered difference per
// paragraph. if colorTTY is true it will add
// red for the lhs or expected side
// green for the rhs or actual side
// yellow for paths
func FormatPretty(w io.Writer, diffs Differences, colorTTY bool) error {
	if len(diffs) == 0 {
		return nil
	}
	p := plainPalette()
	if colorTTY {
		p = colorPalette()
	}

	msgs := make([]string, len(diffs))
	for i, d := range diffs {
		msgs[i] = render(d, p)
	}
	_, err := io.WriteString(w, strings.Join(msgs, "\n\n")+"\n")
	return err
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, colorTTY bool) string {
	if ds == nil {
		return "<nil>"
	}

	neutral, notEqual, missingLeft, missingRight := fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint
	if colorTTY {
		p := colorPalette()
		missingLeft, missingRight, notEqual = p.first, p.second, p.path
		c := color.New(color.FgWhite)
		c.EnableColor()
		neutral = c.SprintFunc()
	}

	buf := &bytes.Buffer{}
	buf.WriteString(neutral(plural(ds.Differences(), "difference", "differences") + "."))
	buf.WriteString(" " + notEqual(fmt.Sprintf("%d not equal.", ds.NotEqual)))
	buf.WriteString(" " + missingLeft(fmt.Sprintf("%d missing from left.", ds.MissingFromLeft)))
	buf.WriteString(" " + missingRight(fmt.Sprintf("%d missing from right.", ds.MissingFromRight)))

	if ds.Matchings > 0 {
		buf.WriteString(" " + neutral(plural(ds.Matchings, "matching", "matchings")+"."))
		buf.WriteString(" " + neutral(plural(ds.CompatChecks, "compatibility check", "compatibility checks")+"."))
	}

	buf.WriteRune('\n')
	return buf.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
