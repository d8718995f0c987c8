package create

import (
	"fmt"
	"io"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
)

// Reporter prints per-path messages and the closing summary.
//
// Precondition skips and dry-run results are always printed. Successful
// writes and errors are printed only in verbose mode; a dry run counts as
// verbose.
type Reporter struct {
	out     io.Writer
	errLog  *log.Logger
	verbose bool
	dryRun  bool
	color   bool
}

// NewReporter writes informational lines to out and errors to errLog.
func NewReporter(out io.Writer, errLog *log.Logger, opts Options, useColor bool) *Reporter {
	return &Reporter{
		out:     out,
		errLog:  errLog,
		verbose: opts.Verbose || opts.DryRun,
		dryRun:  opts.DryRun,
		color:   useColor,
	}
}

// Report prints the messages for one result.
func (r *Reporter) Report(res Result) {
	if res.ParentErr != nil && r.verbose {
		r.errLog.Printf("%s: creating parent directories: %v", displayPath(res.Path), res.ParentErr)
	}

	switch res.Outcome {
	case OutcomeSkippedExists:
		r.line(res.Path, r.paint(color.Yellow, "File already exists"))
	case OutcomeSkippedNoParent:
		r.line(res.Path, r.paint(color.Yellow, "Parent directory does not exist"))
	case OutcomeWouldCreate:
		r.line(res.Path, r.paint(color.Cyan, "Would create")+withParent(res))
	case OutcomeWouldOverwrite:
		r.line(res.Path, r.paint(color.Cyan, "Would overwrite"))
	case OutcomeCreated:
		if r.verbose {
			r.line(res.Path, r.paint(color.Green, "Created")+withParent(res))
		}
	case OutcomeOverwritten:
		if r.verbose {
			r.line(res.Path, r.paint(color.Green, "Overwritten"))
		}
	case OutcomeFailed:
		if r.verbose {
			r.errLog.Printf("%s: %v", displayPath(res.Path), res.Err)
		}
	}
}

// Summary prints one line of totals in verbose mode.
func (r *Reporter) Summary(results []Result) {
	if !r.verbose {
		return
	}

	var created, overwritten, skipped, failed, written int
	for _, res := range results {
		switch {
		case res.Outcome == OutcomeCreated || res.Outcome == OutcomeWouldCreate:
			created++
		case res.Outcome == OutcomeOverwritten || res.Outcome == OutcomeWouldOverwrite:
			overwritten++
		case res.Outcome.Skipped():
			skipped++
		case res.Outcome == OutcomeFailed:
			failed++
		}
		written += res.Written
	}

	createdWord, overwrittenWord := "created", "overwritten"
	if r.dryRun {
		createdWord, overwrittenWord = "would create", "would overwrite"
	}
	fmt.Fprintf(r.out, "%s: %d %s, %d %s, %d skipped, %d failed (%s written)\n",
		pathCount(len(results)), created, createdWord, overwritten, overwrittenWord,
		skipped, failed, humanize.Bytes(uint64(written)))
}

func (r *Reporter) line(path, msg string) {
	fmt.Fprintf(r.out, "%s: %s\n", displayPath(path), msg)
}

// displayPath quotes the empty path so it is visible in a message.
func displayPath(path string) string {
	if path == "" {
		return `""`
	}
	return path
}

func (r *Reporter) paint(c color.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func withParent(res Result) string {
	if res.ParentCreated {
		return " with parent directories"
	}
	return ""
}

func pathCount(n int) string {
	if n == 1 {
		return "1 path"
	}
	return fmt.Sprintf("%d paths", n)
}
