package create

// Outcome is the terminal state reached by one path.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeOverwritten
	OutcomeSkippedExists
	OutcomeSkippedNoParent
	OutcomeFailed
	OutcomeWouldCreate
	OutcomeWouldOverwrite
)

var outcomeNames = [...]string{
	OutcomeCreated:         "created",
	OutcomeOverwritten:     "overwritten",
	OutcomeSkippedExists:   "skipped-exists",
	OutcomeSkippedNoParent: "skipped-no-parent",
	OutcomeFailed:          "failed",
	OutcomeWouldCreate:     "would-create",
	OutcomeWouldOverwrite:  "would-overwrite",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Skipped reports whether the path was left alone because of a precondition.
func (o Outcome) Skipped() bool {
	return o == OutcomeSkippedExists || o == OutcomeSkippedNoParent
}

// Result is what happened to one path.
type Result struct {
	// Path is the path as it was given on the command line.
	Path string
	// Abs is Path resolved against the working directory.
	Abs string

	Outcome Outcome

	// ParentCreated is set when missing parent directories were created,
	// or would have been in a dry run.
	ParentCreated bool
	// ParentErr is a non-fatal failure to create parent directories.
	ParentErr error

	// Err is the reason for OutcomeFailed.
	Err error

	// Written is the number of bytes written into the file.
	Written int
}

func (r Result) fail(err error) Result {
	r.Outcome = OutcomeFailed
	r.Err = err
	return r
}

// Failed reports whether any result in rs failed.
func Failed(rs []Result) bool {
	for _, r := range rs {
		if r.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}
