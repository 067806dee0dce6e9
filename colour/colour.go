package colour

import (
	"strings"
)

func Success(message string) string {
	return green(message)
}

func Info(message string) string {
	return bright + blue(message)
}

func Warning(message string) string {
	return yellow(message)
}

func Error(message string) string {
	return red(message)
}

// ErrorDetail highlights the underlying error message inside a larger
// failure report.
func ErrorDetail(message string) string {
	return bright + red(message)
}

// Cmd highlights a runnable command, e.g. `gpg-tool import key.asc`
func Cmd(message string) string {
	return bright + blue(message)
}

func green(message string) string {
	return fgGreen + message + reset
}

func blue(message string) string {
	return fgBlue + message + reset
}

func red(message string) string {
	return fgRed + message + reset
}

func yellow(message string) string {
	return fgYellow + message + reset
}

// StripAllColourCodes strips all the ANSI colour codes from a string
func StripAllColourCodes(message string) string {
	for _, colourCode := range allColourCodes {
		message = strings.Replace(message, colourCode, "", -1)
	}

	return message
}
