package out

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fluidkeys/gpg/colour"
)

var outputter outputterInterface = &terminalOutputter{}

var logFilename string

// Load points the log package at a debug log file inside the given
// directory, creating the file if necessary. Call it once at startup,
// before anything logs.
func Load(logDirectory string) error {
	logFilename = filepath.Join(logDirectory, "debug.log")

	f, err := os.OpenFile(logFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open '%s': %v", logFilename, err)
	}
	log.SetOutput(f)
	return nil
}

// GetLogFilename returns the file Load pointed the log package at, or the
// empty string before Load has been called.
func GetLogFilename() string {
	return logFilename
}

// Print writes the message to the current output destination, plus a copy,
// stripped of colour codes, to the debug log.
func Print(message string) {
	outputter.print(message)
	log.Print(colour.StripAllColourCodes(message))
}

// SetOutputToTerminal makes Print write to stdout. This is the default.
func SetOutputToTerminal() {
	outputter = &terminalOutputter{}
}

// SetOutputToStderr makes Print write to stderr instead, keeping stdout
// clean when it's carrying output like ciphertext or plaintext.
func SetOutputToStderr() {
	outputter = &stderrOutputter{}
}

type outputterInterface interface {
	print(message string)
}

type terminalOutputter struct{}

func (o *terminalOutputter) print(message string) {
	fmt.Print(message)
}

type stderrOutputter struct{}

func (o *stderrOutputter) print(message string) {
	fmt.Fprint(os.Stderr, message)
}
