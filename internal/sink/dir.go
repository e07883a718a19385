package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/specialistvlad/randscenario/internal/fsutil"
	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// ManifestName is the file listing every committed output and its seed.
const ManifestName = "seed.txt"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("sink is closed")

// DirOptions configures a Dir.
type DirOptions struct {
	// Path is the destination directory. It must not exist yet.
	Path string
	// Prefix starts every file name: <prefix>_<ordinal>.<ext>.
	Prefix  string
	Encoder registry.Encoder
	// RunID tags manifest rows.
	RunID string
}

// ManifestEntry is one row of the seed manifest.
type ManifestEntry struct {
	File    string
	Ordinal int
	Base    uint64
	Stream  uint64
}

// Dir writes one file per realization into a fresh directory and records a
// seed manifest on Close.
type Dir struct {
	path    string
	prefix  string
	enc     registry.Encoder
	runID   string
	mu      sync.Mutex
	created bool
	closed  bool
	entries []ManifestEntry
}

// NewDir validates opts and checks that the destination does not exist.
// Nothing is created until the first Write or an explicit Prepare.
func NewDir(opts DirOptions) (*Dir, error) {
	if opts.Path == "" {
		return nil, &Error{Op: "check", Err: errors.New("destination path is empty")}
	}
	if opts.Encoder == nil {
		return nil, &Error{Op: "check", Path: opts.Path, Err: errors.New("no encoder configured")}
	}
	if opts.Prefix == "" || strings.ContainsAny(opts.Prefix, `/\`) || opts.Prefix == "." || opts.Prefix == ".." {
		return nil, &Error{Op: "check", Path: opts.Path, Err: fmt.Errorf("invalid file prefix %q", opts.Prefix)}
	}
	if err := fsutil.CheckAbsent(opts.Path); err != nil {
		return nil, &Error{Op: "check", Path: opts.Path, Err: err}
	}
	return &Dir{path: opts.Path, prefix: opts.Prefix, enc: opts.Encoder, runID: opts.RunID}, nil
}

// Path returns the destination directory.
func (d *Dir) Path() string {
	return d.path
}

// FileName returns the name the realization with the given ordinal is
// written under.
func (d *Dir) FileName(ordinal int) string {
	return fmt.Sprintf("%s_%d.%s", d.prefix, ordinal, d.enc.Extension())
}

// Prepare creates the destination directory. It is safe to call more than
// once.
func (d *Dir) Prepare(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prepareLocked(ctx)
}

func (d *Dir) prepareLocked(ctx context.Context) error {
	if d.closed {
		return &Error{Op: "mkdir", Path: d.path, Err: ErrClosed}
	}
	if d.created {
		return nil
	}
	if err := fsutil.CreateFreshDir(d.path, dirPerm); err != nil {
		return &Error{Op: "mkdir", Path: d.path, Err: err}
	}
	d.created = true
	ctxlog.FromContext(ctx).Debug("Output directory created.", "path", d.path)
	return nil
}

// Write encodes r into its own file. The file appears atomically.
func (d *Dir) Write(ctx context.Context, r *generator.Realization) error {
	name := d.FileName(r.Ordinal)
	if err := ctx.Err(); err != nil {
		return &Error{Op: "write", Path: filepath.Join(d.path, name), Ordinal: r.Ordinal, Err: err}
	}

	d.mu.Lock()
	err := d.prepareLocked(ctx)
	d.mu.Unlock()
	if err != nil {
		return err
	}

	err = fsutil.WriteFileAtomic(d.path, name, filePerm, func(w io.Writer) error {
		return d.enc.Encode(w, r)
	})
	if err != nil {
		return &Error{Op: "write", Path: filepath.Join(d.path, name), Ordinal: r.Ordinal, Err: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return &Error{Op: "write", Path: filepath.Join(d.path, name), Ordinal: r.Ordinal, Err: ErrClosed}
	}
	d.entries = append(d.entries, ManifestEntry{
		File:    name,
		Ordinal: r.Ordinal,
		Base:    r.Seed.Base,
		Stream:  r.Seed.Stream,
	})
	return nil
}

// Committed returns how many realizations were written so far.
func (d *Dir) Committed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Manifest returns the committed entries sorted by ordinal.
func (d *Dir) Manifest() []ManifestEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sortedLocked()
}

func (d *Dir) sortedLocked() []ManifestEntry {
	out := make([]ManifestEntry, len(d.entries))
	copy(out, d.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out
}

// Close writes the seed manifest for everything committed. It does nothing
// if the directory was never created, and later calls are no-ops.
func (d *Dir) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if !d.created {
		return nil
	}

	entries := d.sortedLocked()
	err := fsutil.WriteFileAtomic(d.path, ManifestName, filePerm, func(w io.Writer) error {
		return writeManifest(w, d.runID, entries)
	})
	if err != nil {
		return &Error{Op: "manifest", Path: filepath.Join(d.path, ManifestName), Err: err}
	}
	return nil
}
