package snapshot

// Kind discriminates the three value kinds a snapshot node can hold.
type Kind int

const (
	KindDir Kind = iota
	KindFile
	KindMarker
)

// Marker labels written by the scanner. The parser accepts any string
// verbatim as an opaque marker label; these are the ones this tool emits.
const (
	MarkerSymlink     = "symlink"
	MarkerSkippedDir  = "skipped dir"
	MarkerUnlistedDir = "unlisted dir"
	MarkerPermission  = "permission error"
)

// Node is one value of a parsed snapshot document: a directory, a file size
// or a marker. Trees are immutable once parsed.
type Node struct {
	Kind    Kind
	Entries map[string]*Node // KindDir
	Size    int64            // KindFile
	Label   string           // KindMarker
}

func NewDir() *Node {
	return &Node{Kind: KindDir, Entries: make(map[string]*Node)}
}

func NewFile(size int64) *Node {
	return &Node{Kind: KindFile, Size: size}
}

func NewMarker(label string) *Node {
	return &Node{Kind: KindMarker, Label: label}
}

// TypeLabel returns the label used when reporting structural differences:
// "dir" for directories, "file" for sized entries, the literal label for
// markers.
func (n *Node) TypeLabel() string {
	switch n.Kind {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	default:
		return n.Label
	}
}
