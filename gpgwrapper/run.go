package gpgwrapper

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Error means GnuPG ran but exited with a non-zero status. The message is
// whatever GnuPG printed to stderr, so callers can show it to the user
// unchanged.
type Error struct {
	// Args are the full arguments the binary was called with.
	Args []string

	// Stderr is everything GnuPG wrote to stderr, verbatim.
	Stderr string

	// ExitCode is the status GnuPG exited with.
	ExitCode int
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Stderr) == "" {
		return fmt.Sprintf("gpg exited with status %d", e.ExitCode)
	}
	return e.Stderr
}

// run calls the binary with the given arguments appended to the global ones
// and returns whatever it wrote to stdout and stderr.
func (g *GnuPG) run(arguments ...string) (stdout string, stderr string, err error) {
	return g.runWithStdin("", arguments...)
}

// runWithStdin is like run but sends textToSend to the process on stdin,
// e.g. an ascii-armored key for `--import`.
func (g *GnuPG) runWithStdin(textToSend string, arguments ...string) (stdout string, stderr string, err error) {
	var stdinReader io.Reader
	if textToSend != "" {
		stdinReader = strings.NewReader(textToSend)
	}

	stdoutBuffer := bytes.Buffer{}
	stderr, err = g.runWithStdio(stdinReader, &stdoutBuffer, arguments...)
	return stdoutBuffer.String(), stderr, err
}

// runWithStdio starts the binary, streams stdin into the process and the
// process's stdout into the given writer, and captures stderr. The three
// streams are pumped concurrently so that a process filling one pipe can
// never deadlock against us writing another. stderr is only inspected (and
// returned) once the process has exited.
//
// If the process exits non-zero the returned error is a *Error carrying
// the captured stderr.
func (g *GnuPG) runWithStdio(stdin io.Reader, stdout io.Writer, arguments ...string) (string, error) {
	fullArguments := g.prependGlobalArguments(arguments...)
	cmd := exec.Command(g.path(), fullArguments...)

	var stdinPipe io.WriteCloser
	var err error

	if stdin != nil {
		if stdinPipe, err = cmd.StdinPipe(); err != nil {
			return "", fmt.Errorf("failed to get stdin pipe: %v", err)
		}
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stdout pipe: %v", err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stderr pipe: %v", err)
	}

	if err = cmd.Start(); err != nil {
		return "", fmt.Errorf("error starting %s: %v", g.path(), err)
	}

	stderrBuffer := bytes.Buffer{}

	pumps := errgroup.Group{}
	if stdin != nil {
		pumps.Go(func() error {
			_, copyError := io.Copy(stdinPipe, stdin)
			if closeError := stdinPipe.Close(); copyError == nil {
				copyError = closeError
			}
			return copyError
		})
	}
	pumps.Go(func() error {
		_, copyError := io.Copy(stdout, stdoutPipe)
		return copyError
	})
	pumps.Go(func() error {
		_, copyError := io.Copy(&stderrBuffer, stderrPipe)
		return copyError
	})

	// the pipes must be fully drained before calling cmd.Wait, which
	// closes them.
	pumpError := pumps.Wait()
	waitError := cmd.Wait()

	stderr := stderrBuffer.String()

	if waitError != nil {
		if exitError, ok := waitError.(*exec.ExitError); ok {
			return stderr, &Error{
				Args:     fullArguments,
				Stderr:   stderr,
				ExitCode: exitError.ExitCode(),
			}
		}
		return stderr, fmt.Errorf("error running %s: %v", g.path(), waitError)
	}

	if pumpError != nil {
		return stderr, fmt.Errorf("error copying gpg input/output: %v", pumpError)
	}

	return stderr, nil
}
