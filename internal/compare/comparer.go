package compare

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"treecompare/internal/pattern"
	"treecompare/internal/snapshot"
)

// Absent is the column value reported for an entry present on one side only.
const Absent = "n/a"

// Record is one reported discrepancy between two snapshots. Left and Right
// hold either Absent, a type label ("dir", "file" or a marker label), or a
// formatted byte size like "42b".
type Record struct {
	Path  string
	Left  string
	Right string
}

// Compare walks two directory nodes in lockstep and returns their
// discrepancies. At each level the sorted union of entry names is visited,
// so output order is deterministic regardless of scan order. matcher
// suppresses both recursion and reporting for matching paths that exist on
// both sides. prefix seeds the reported paths; pass "" to report from the
// comparison root.
func Compare(a, b *snapshot.Node, prefix string, matcher *pattern.Matcher) []Record {
	if matcher == nil {
		matcher = pattern.Compile(nil)
	}
	var records []Record
	compareDirs(a, b, prefix, matcher, &records)
	return records
}

func compareDirs(a, b *snapshot.Node, prefix string, matcher *pattern.Matcher, out *[]Record) {
	for _, name := range nameUnion(a, b) {
		path := joinPath(prefix, name)
		left, inA := a.Entries[name]
		right, inB := b.Entries[name]

		switch {
		case !inB:
			*out = append(*out, Record{Path: path, Left: left.TypeLabel(), Right: Absent})
		case !inA:
			*out = append(*out, Record{Path: path, Left: Absent, Right: right.TypeLabel()})
		case matcher.Matches(path):
			// Present on both sides and skip-matched: no record, no descent.
		case left.Kind == snapshot.KindDir && right.Kind == snapshot.KindDir:
			compareDirs(left, right, path, matcher, out)
		case left.Kind == snapshot.KindFile && right.Kind == snapshot.KindFile:
			if left.Size != right.Size {
				*out = append(*out, Record{Path: path, Left: formatSize(left.Size), Right: formatSize(right.Size)})
			}
		default:
			// Mixed kinds, or markers: report the type labels when they differ.
			if left.TypeLabel() != right.TypeLabel() {
				*out = append(*out, Record{Path: path, Left: left.TypeLabel(), Right: right.TypeLabel()})
			}
		}
	}
}

func nameUnion(a, b *snapshot.Node) []string {
	names := make([]string, 0, len(a.Entries)+len(b.Entries))
	for name := range a.Entries {
		names = append(names, name)
	}
	for name := range b.Entries {
		if _, dup := a.Entries[name]; !dup {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func formatSize(n int64) string {
	return fmt.Sprintf("%db", n)
}

const labelWidth = 12

// WriteReport renders one line per record: both labels centered in
// fixed-width columns, then the full path.
func WriteReport(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", center(r.Left, labelWidth), center(r.Right, labelWidth), r.Path); err != nil {
			return err
		}
	}
	return nil
}

// center pads s to width, putting the spare column on the right when the
// padding is odd.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
