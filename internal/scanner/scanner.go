package scanner

import (
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"

	"treecompare/internal/pattern"
	"treecompare/internal/snapshot"
)

// Scanner walks a directory tree depth-first and streams the snapshot
// document to its sink as entries are discovered. Nothing is buffered beyond
// the current recursion stack, so memory stays bounded for arbitrarily large
// trees.
type Scanner struct {
	w       io.Writer
	matcher *pattern.Matcher
	logger  log.Logger
	indent  string
}

// New builds a Scanner writing to w. matcher decides which directories are
// skipped; logger receives diagnostics for entries that cannot appear in a
// snapshot (sockets, devices, FIFOs). Either may be nil.
func New(w io.Writer, matcher *pattern.Matcher, logger log.Logger) *Scanner {
	if matcher == nil {
		matcher = pattern.Compile(nil)
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Scanner{w: w, matcher: matcher, logger: logger, indent: " "}
}

// Scan writes the snapshot document for root. The root path as given becomes
// the document's single top-level key. maxDepth bounds directory recursion;
// a negative value means unbounded, zero serializes every immediate
// subdirectory as an unlisted-dir marker.
//
// Only permission failures while listing a directory are recovered (as a
// permission-error marker for that node); any other I/O error aborts the
// scan and the emitted output is not a complete document.
func (s *Scanner) Scan(root string, maxDepth int) error {
	if _, err := io.WriteString(s.w, "{"+snapshot.QuoteASCII(root)+":"); err != nil {
		return err
	}
	if err := s.scanDir(root, "", maxDepth); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "}")
	return err
}

func (s *Scanner) scanDir(dir, prefix string, depth int) error {
	listing, err := readDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			_, werr := io.WriteString(s.w, snapshot.QuoteASCII(snapshot.MarkerPermission))
			return werr
		}
		return errors.Wrapf(err, "listing %s", dir)
	}

	if _, err := io.WriteString(s.w, "{"); err != nil {
		return err
	}
	fr := &frame{w: s.w, prefix: prefix}
	for _, entry := range listing {
		name := snapshot.QuoteASCII(entry.Name())
		full := entryPath(dir, entry.Name())
		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			// Never followed, so a symlink cycle cannot recurse.
			err = fr.item(name + ":" + snapshot.QuoteASCII(snapshot.MarkerSymlink))
		case entry.Type().IsRegular():
			info, serr := entry.Info()
			if serr != nil {
				return errors.Wrapf(serr, "stat %s", full)
			}
			err = fr.item(name + ":" + strconv.FormatInt(info.Size(), 10))
		case entry.IsDir():
			switch {
			case depth == 0:
				err = fr.item(name + ":" + snapshot.QuoteASCII(snapshot.MarkerUnlistedDir))
			case s.matcher.Matches(full):
				err = fr.item(name + ":" + snapshot.QuoteASCII(snapshot.MarkerSkippedDir))
			default:
				if err = fr.item(name + ":"); err != nil {
					return err
				}
				next := depth
				if next > 0 {
					next--
				}
				err = s.scanDir(full, prefix+s.indent, next)
			}
		default:
			s.logger.Log("msg", "skipping unsupported entry", "path", full, "type", entry.Type().String())
			continue
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(s.w, "}")
	return err
}

// entryPath extends dir with one entry name, without cleaning. A scan rooted
// at "." must see "./.git" for a top-level entry, not ".git", so that
// basename skip patterns (normalized to "*/<name>") keep matching.
func entryPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// readDir lists without sorting: entry order is whatever the OS returns, as
// os.ReadDir's sort would mask the unordered nature of the stream.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// frame holds the separator state for one directory level of the stream. The
// first entry in a container needs no leading comma, every later one does.
type frame struct {
	w      io.Writer
	prefix string
	wrote  bool
}

func (f *frame) item(s string) error {
	sep := ","
	if !f.wrote {
		sep = ""
		f.wrote = true
	}
	_, err := io.WriteString(f.w, sep+"\n"+f.prefix+s)
	return err
}
