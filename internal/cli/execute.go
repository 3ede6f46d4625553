package cli

import (
	"io"
)

// Execute runs the CLI with args and returns the process exit code.
// Errors are reported on stderr in text form, or on stdout as a JSON
// error response when --format json is in effect. If the report itself
// cannot be written, the exit code is ExitCommandError.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if format != "json" {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr, Verbose: opts.Verbose}
	if reportErr := f.Error(errorCode(err), err.Error(), nil); reportErr != nil {
		return ExitCommandError
	}

	return GetExitCode(err)
}
