package snapshot

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads and parses a snapshot document from disk.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	n, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing snapshot %s", path)
	}
	return n, nil
}

// Parse decodes a snapshot document. The top-level value must be an object.
// Within it, objects are directories, non-negative integers are file sizes
// and strings are marker labels; any other value kind is an error.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after document")
	}

	root, err := fromValue(raw, "")
	if err != nil {
		return nil, err
	}
	if root.Kind != KindDir {
		return nil, errors.New("top-level value is not an object")
	}
	return root, nil
}

// Unwrap discards a document's single top-level entry (the recorded scan
// root) for relative-mode comparison. A document with zero or several
// top-level keys, or a non-directory value under the root key, is rejected.
func Unwrap(n *Node) (*Node, error) {
	if len(n.Entries) != 1 {
		return nil, errors.Errorf("expected exactly one top-level entry, found %d", len(n.Entries))
	}
	for name, child := range n.Entries {
		if child.Kind != KindDir {
			return nil, errors.Errorf("top-level entry %q is not a directory", name)
		}
		return child, nil
	}
	panic("unreachable")
}

func fromValue(v interface{}, path string) (*Node, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		n := NewDir()
		for name, raw := range v {
			child, err := fromValue(raw, joined(path, name))
			if err != nil {
				return nil, err
			}
			n.Entries[name] = child
		}
		return n, nil
	case json.Number:
		size, err := v.Int64()
		if err != nil {
			return nil, errors.Errorf("%s: size %s is not an integer", at(path), v)
		}
		if size < 0 {
			return nil, errors.Errorf("%s: negative size %d", at(path), size)
		}
		return NewFile(size), nil
	case string:
		return NewMarker(v), nil
	default:
		return nil, errors.Errorf("%s: unsupported value of type %T", at(path), v)
	}
}

func joined(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func at(path string) string {
	if path == "" {
		return "at top level"
	}
	return "at " + path
}
