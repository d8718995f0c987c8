package cli

import (
	"fmt"
	"io"
)

// ProgramName is used in the usage synopsis and in error hints.
const ProgramName = "mkfile"

// PrintHelp writes the usage synopsis to w.
func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [OPTION]... PATH...\n", ProgramName)
	fmt.Fprintln(w, "Create each PATH as a regular file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -d, --dry                report what would be done, touch nothing")
	fmt.Fprintln(w, "  -v, --verbose            print a message for every path and a summary")
	fmt.Fprintln(w, "  -p, --parents            create missing parent directories")
	fmt.Fprintln(w, "  -o, --overwrite          replace existing files (also --override)")
	fmt.Fprintln(w, "  -T, --text STRING        write STRING and a newline into every file")
	fmt.Fprintln(w, "      --help               display this help and exit")
	fmt.Fprintln(w, "      --version            output version information and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Short options can be combined, e.g. -vp.")
	fmt.Fprintln(w, "Settings are read from $MKFILE_CONFIG or <user config dir>/mkfile/config.yaml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status:")
	fmt.Fprintln(w, "  0  every path was created, overwritten or skipped")
	fmt.Fprintln(w, "  1  at least one path failed, or the config file is invalid")
	fmt.Fprintln(w, "  2  usage error, nothing was created")
}

// PrintVersion writes the version line to w.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "%s %s\n", ProgramName, version)
}

// UsageHint is appended to usage error messages.
func UsageHint() string {
	return fmt.Sprintf("Try '%s --help' for more information.", ProgramName)
}
