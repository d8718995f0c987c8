// Package cli turns the raw invocation tokens of mkfile into an Arguments
// value and owns the usage/version text.
//
// The grammar is deliberately small: "--name" is one long option, "-abc" is a
// cluster of short options, a token made only of dashes is always invalid and
// everything else is a path. The text option consumes the next token verbatim.
package cli

import (
	"fmt"
	"strings"
)

// Action is what the invocation asks for once tokenizing is done.
type Action int

const (
	// ActionRun processes the collected paths.
	ActionRun Action = iota
	// ActionHelp prints the usage text and exits.
	ActionHelp
	// ActionVersion prints the version string and exits.
	ActionVersion
)

// Arguments is the result of tokenizing an invocation.
// It is built once by Tokenize and never modified afterwards.
type Arguments struct {
	Action Action

	DryRun    bool
	Verbose   bool
	Parents   bool
	Overwrite bool

	// Text is the default file content. HasText distinguishes `-T ""` from
	// no text option at all.
	Text    string
	HasText bool

	// Unrecognized holds unknown options in the form they were typed,
	// e.g. "-q" or "--foo". A dash inside a short cluster is shown with its
	// token, e.g. "'-' in -v-p".
	Unrecognized []string

	// Paths are kept in input order.
	Paths []string
}

// flagSetters maps every boolean option identifier, short or long, to the
// field it sets.
var flagSetters = map[string]func(*Arguments){
	"v":         func(a *Arguments) { a.Verbose = true },
	"verbose":   func(a *Arguments) { a.Verbose = true },
	"p":         func(a *Arguments) { a.Parents = true },
	"parents":   func(a *Arguments) { a.Parents = true },
	"o":         func(a *Arguments) { a.Overwrite = true },
	"overwrite": func(a *Arguments) { a.Overwrite = true },
	"override":  func(a *Arguments) { a.Overwrite = true },
	"d":         func(a *Arguments) { a.DryRun = true },
	"dry":       func(a *Arguments) { a.DryRun = true },
}

// option is a single option identifier pulled out of a token.
type option struct {
	name string
	long bool
	// token is the argument the option came from.
	token string
}

func (o option) String() string {
	switch {
	case o.long:
		return "--" + o.name
	case o.name == "-":
		// "--" would read as a long option with no name.
		return fmt.Sprintf("'-' in %s", o.token)
	}
	return "-" + o.name
}

// tokenizer walks the invocation tokens left to right. pos always points at
// the next token that has not been classified yet.
type tokenizer struct {
	tokens []string
	pos    int
	args   *Arguments
}

// Tokenize classifies every token of args (program name excluded).
// It returns a *UsageError when the text option is malformed. Unknown
// options are collected, not rejected; see Validate.
func Tokenize(args []string) (*Arguments, error) {
	t := &tokenizer{tokens: args, args: &Arguments{}}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.args, nil
}

// Parse tokenizes args and, for the run action, validates the result.
func Parse(args []string) (*Arguments, error) {
	a, err := Tokenize(args)
	if err != nil {
		return nil, err
	}
	if a.Action != ActionRun {
		return a, nil
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (t *tokenizer) run() error {
	for t.pos < len(t.tokens) {
		tok := t.tokens[t.pos]
		t.pos++

		switch {
		case tok == "" || !strings.HasPrefix(tok, "-"):
			t.args.Paths = append(t.args.Paths, tok)
			continue
		case strings.Trim(tok, "-") == "":
			t.args.Unrecognized = append(t.args.Unrecognized, tok)
			continue
		}

		for _, opt := range splitOptions(tok) {
			stop, err := t.apply(opt)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
	}
	return nil
}

// splitOptions expands an option token. The caller guarantees tok starts
// with "-" and is not made only of dashes.
func splitOptions(tok string) []option {
	if name, ok := strings.CutPrefix(tok, "--"); ok {
		return []option{{name: name, long: true, token: tok}}
	}
	runes := []rune(tok[1:])
	opts := make([]option, 0, len(runes))
	for _, r := range runes {
		opts = append(opts, option{name: string(r), token: tok})
	}
	return opts
}

// apply records one option. stop reports that help or version was requested
// and nothing else should be looked at.
func (t *tokenizer) apply(opt option) (stop bool, err error) {
	switch opt.name {
	case "help":
		t.args.Action = ActionHelp
		return true, nil
	case "version":
		t.args.Action = ActionVersion
		return true, nil
	case "T", "text":
		return false, t.takeText(opt)
	}

	if set, ok := flagSetters[opt.name]; ok {
		set(t.args)
		return false, nil
	}
	t.args.Unrecognized = append(t.args.Unrecognized, opt.String())
	return false, nil
}

func (t *tokenizer) takeText(opt option) error {
	if t.args.HasText {
		return &UsageError{Message: "default text specified more than once"}
	}
	if t.pos >= len(t.tokens) {
		if opt.long {
			return &UsageError{Message: fmt.Sprintf("option '%s' requires an argument", opt)}
		}
		return &UsageError{Message: fmt.Sprintf("option requires an argument -- '%s'", opt.name)}
	}
	t.args.Text = t.tokens[t.pos]
	t.args.HasText = true
	t.pos++
	return nil
}

// Validate rejects the run when any option was not recognized, listing all
// of them, or when there is nothing to create.
func (a *Arguments) Validate() error {
	switch len(a.Unrecognized) {
	case 0:
	case 1:
		return &UsageError{Message: "unrecognized option: " + a.Unrecognized[0]}
	default:
		return &UsageError{Message: "unrecognized options: " + strings.Join(a.Unrecognized, ", ")}
	}
	if len(a.Paths) == 0 {
		return &UsageError{Message: "missing path operand"}
	}
	return nil
}
