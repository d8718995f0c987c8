package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Tokenize ---

func TestTokenize_Classification(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *Arguments
	}{
		{
			name: "paths only",
			args: []string{"a.txt", "dir/b.txt"},
			want: &Arguments{Paths: []string{"a.txt", "dir/b.txt"}},
		},
		{
			name: "short cluster",
			args: []string{"-vp", "a.txt"},
			want: &Arguments{Verbose: true, Parents: true, Paths: []string{"a.txt"}},
		},
		{
			name: "long options",
			args: []string{"--verbose", "--parents", "--overwrite", "--dry", "a.txt"},
			want: &Arguments{Verbose: true, Parents: true, Overwrite: true, DryRun: true, Paths: []string{"a.txt"}},
		},
		{
			name: "override alias",
			args: []string{"--override", "a.txt"},
			want: &Arguments{Overwrite: true, Paths: []string{"a.txt"}},
		},
		{
			name: "single letter long form",
			args: []string{"--v", "a.txt"},
			want: &Arguments{Verbose: true, Paths: []string{"a.txt"}},
		},
		{
			name: "options after paths",
			args: []string{"a.txt", "-o", "b.txt"},
			want: &Arguments{Overwrite: true, Paths: []string{"a.txt", "b.txt"}},
		},
		{
			name: "empty token is a path",
			args: []string{""},
			want: &Arguments{Paths: []string{""}},
		},
		{
			name: "dash only tokens are unrecognized",
			args: []string{"-", "--", "---", "a.txt"},
			want: &Arguments{Unrecognized: []string{"-", "--", "---"}, Paths: []string{"a.txt"}},
		},
		{
			name: "unknown short and long",
			args: []string{"-vq", "--foo", "a.txt"},
			want: &Arguments{Verbose: true, Unrecognized: []string{"-q", "--foo"}, Paths: []string{"a.txt"}},
		},
		{
			name: "dash inside a cluster",
			args: []string{"-v-p"},
			want: &Arguments{Verbose: true, Parents: true, Unrecognized: []string{"'-' in -v-p"}},
		},
		{
			name: "short text consumes next token",
			args: []string{"-T", "hello", "x.txt"},
			want: &Arguments{Text: "hello", HasText: true, Paths: []string{"x.txt"}},
		},
		{
			name: "text value may look like an option",
			args: []string{"--text", "-v", "x.txt"},
			want: &Arguments{Text: "-v", HasText: true, Paths: []string{"x.txt"}},
		},
		{
			name: "text inside a cluster",
			args: []string{"-vT", "hi there", "-p", "x.txt"},
			want: &Arguments{Verbose: true, Parents: true, Text: "hi there", HasText: true, Paths: []string{"x.txt"}},
		},
		{
			name: "empty text",
			args: []string{"-T", "", "x.txt"},
			want: &Arguments{HasText: true, Paths: []string{"x.txt"}},
		},
		{
			name: "help stops tokenizing",
			args: []string{"-q", "--help", "-T"},
			want: &Arguments{Action: ActionHelp, Unrecognized: []string{"-q"}},
		},
		{
			name: "version stops tokenizing",
			args: []string{"a.txt", "--version", "b.txt"},
			want: &Arguments{Action: ActionVersion, Paths: []string{"a.txt"}},
		},
		{
			name: "unicode cluster",
			args: []string{"-vé"},
			want: &Arguments{Verbose: true, Unrecognized: []string{"-é"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.args)
			if err != nil {
				t.Fatalf("Tokenize(%q): unexpected error: %v", tc.args, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.args, diff)
			}
		})
	}
}

func TestTokenize_TextMissingValue(t *testing.T) {
	for _, args := range [][]string{{"-T"}, {"a.txt", "-vT"}, {"--text"}} {
		_, err := Tokenize(args)
		var usageErr *UsageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("Tokenize(%q): got %v, want *UsageError", args, err)
		}
		if !strings.Contains(usageErr.Message, "requires an argument") {
			t.Errorf("Tokenize(%q): message %q does not mention the missing argument", args, usageErr.Message)
		}
	}
}

func TestTokenize_TextTwice(t *testing.T) {
	for _, args := range [][]string{
		{"-T", "a", "-T", "b", "x.txt"},
		{"-T", "a", "--text", "b"},
		{"-TT", "a", "b"},
	} {
		_, err := Tokenize(args)
		var usageErr *UsageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("Tokenize(%q): got %v, want *UsageError", args, err)
		}
		if !strings.Contains(usageErr.Message, "more than once") {
			t.Errorf("Tokenize(%q): unexpected message %q", args, usageErr.Message)
		}
	}
}

// --- Validate / Parse ---

func TestParse_UnrecognizedSingular(t *testing.T) {
	_, err := Parse([]string{"-q", "a.txt"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got, want := err.Error(), "unrecognized option: -q"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_UnrecognizedPlural(t *testing.T) {
	_, err := Parse([]string{"-qx", "--foo", "a.txt", "b.txt"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got, want := err.Error(), "unrecognized options: -q, -x, --foo"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_DashInsideCluster(t *testing.T) {
	_, err := Parse([]string{"-v-p", "-x", "a.txt"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got, want := err.Error(), "unrecognized options: '-' in -v-p, -x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse_MissingPaths(t *testing.T) {
	_, err := Parse([]string{"-v", "-p"})
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("got %v, want *UsageError", err)
	}
	if usageErr.Message != "missing path operand" {
		t.Errorf("unexpected message %q", usageErr.Message)
	}
}

func TestParse_HelpBeatsValidation(t *testing.T) {
	a, err := Parse([]string{"-q", "--nope", "--help", "a.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Action != ActionHelp {
		t.Errorf("action: got %v, want ActionHelp", a.Action)
	}
}

func TestParse_VersionWithoutPaths(t *testing.T) {
	a, err := Parse([]string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Action != ActionVersion {
		t.Errorf("action: got %v, want ActionVersion", a.Action)
	}
}

func TestParse_Valid(t *testing.T) {
	a, err := Parse([]string{"-v", "-p", "a/b/c.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Arguments{Verbose: true, Parents: true, Paths: []string{"a/b/c.txt"}}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// --- help / version ---

func TestPrintHelp_ListsEveryOption(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	out := buf.String()
	for _, want := range []string{
		"Usage: mkfile", "-d, --dry", "-v, --verbose", "-p, --parents",
		"-o, --overwrite", "--override", "-T, --text", "--help", "--version",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "1.2.3")
	if got, want := buf.String(), "mkfile 1.2.3\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
