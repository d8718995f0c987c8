// Package create decides, for every requested path, whether to create,
// overwrite, skip or fail, and performs the filesystem work.
//
// Paths are processed one at a time in input order. A Result is produced for
// each path and nothing that happens to one path affects the next.
package create

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	vfs "github.com/twpayne/go-vfs"
)

// FS is the subset of a go-vfs filesystem the processor needs.
// vfs.OSFS and *vfs.PathFS both satisfy it.
type FS interface {
	Stat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// Options is the immutable policy applied to every path.
type Options struct {
	DryRun    bool
	Verbose   bool
	Parents   bool
	Overwrite bool

	Text    string
	HasText bool

	FileMode os.FileMode
	DirMode  os.FileMode
}

// content is what goes into every created file.
func (o Options) content() string {
	if !o.HasText {
		return ""
	}
	return o.Text + "\n"
}

// ErrEmptyPath is the failure reason for an empty path operand.
var ErrEmptyPath = errors.New("empty path")

// QueryError is a failure to find out whether a path exists, for reasons
// other than it not existing.
type QueryError struct {
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("checking %s: %v", e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Processor applies Options to one path at a time.
type Processor struct {
	fs   FS
	cwd  string
	opts Options
}

// NewProcessor returns a Processor that resolves relative paths against cwd.
func NewProcessor(fsys FS, cwd string, opts Options) *Processor {
	return &Processor{fs: fsys, cwd: cwd, opts: opts}
}

// Run processes paths in order and calls report, if not nil, after each one.
func (p *Processor) Run(paths []string, report func(Result)) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		res := p.Process(path)
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results
}

// Process decides what to do with a single path and does it.
func (p *Processor) Process(path string) Result {
	if path == "" {
		return Result{}.fail(ErrEmptyPath)
	}
	res := Result{Path: path, Abs: p.resolve(path)}

	exists, err := p.exists(res.Abs)
	if err != nil {
		return res.fail(err)
	}
	if exists && !p.opts.Overwrite {
		res.Outcome = OutcomeSkippedExists
		return res
	}
	overwrite := exists

	if !exists {
		parent := filepath.Dir(res.Abs)
		parentExists, err := p.exists(parent)
		if err != nil {
			return res.fail(err)
		}
		if !parentExists {
			if !p.opts.Parents {
				res.Outcome = OutcomeSkippedNoParent
				return res
			}
			res.ParentCreated = true
			if !p.opts.DryRun {
				// A failure here is not fatal for the path: creating the file
				// below reports what actually went wrong.
				if err := vfs.MkdirAll(p.fs, parent, p.opts.DirMode); err != nil {
					res.ParentCreated = false
					res.ParentErr = err
				}
			}
		}
	}

	if p.opts.DryRun {
		res.Outcome = OutcomeWouldCreate
		if overwrite {
			res.Outcome = OutcomeWouldOverwrite
		}
		return res
	}

	n, err := p.write(res.Abs, overwrite)
	res.Written = n
	if err != nil {
		return res.fail(err)
	}
	res.Outcome = OutcomeCreated
	if overwrite {
		res.Outcome = OutcomeOverwritten
	}
	return res
}

func (p *Processor) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.cwd, path)
}

// exists reports whether name exists. Only ErrNotExist counts as absent;
// every other stat error comes back as a *QueryError.
func (p *Processor) exists(name string) (bool, error) {
	_, err := p.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &QueryError{Path: name, Err: err}
	}
}

// write creates or truncates name and writes the configured content.
// New files are opened with O_EXCL so a file that appeared since the
// existence check is never clobbered.
func (p *Processor) write(name string, overwrite bool) (int, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := p.fs.OpenFile(name, flag, p.opts.FileMode)
	if err != nil {
		return 0, err
	}

	n, err := f.WriteString(p.opts.content())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", name, err)
	}
	return n, nil
}
