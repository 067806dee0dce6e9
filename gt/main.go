// Copyright 2018 Paul Furley and Ian Drysdale
//
// This file is part of gpg-tool which makes it simple to drive GnuPG.
//
// gpg-tool is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpg-tool is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with gpg-tool.  If not, see <https://www.gnu.org/licenses/>.

package gt

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/fluidkeys/gpg/config"
	"github.com/fluidkeys/gpg/database"
	"github.com/fluidkeys/gpg/gpgwrapper"
	"github.com/fluidkeys/gpg/keyring"
	"github.com/fluidkeys/gpg/out"
)

const Version = "0.1.0"

var (
	gpg              gpgwrapper.GnuPG
	gpgToolDirectory string
	db               database.Database
	Config           config.Config
	Keyring          keyring.Keyring
)

type exitCode = int

const usageTemplate = `gpg-tool %s

Configuration file: %s
          Log file: %s

Usage:
	gpg-tool version
	gpg-tool fingerprint [<filename>]
	gpg-tool have-key <fingerprint>
	gpg-tool import [<filename>]
	gpg-tool delete [--secret] <fingerprint>
	gpg-tool encrypt --to=<fingerprint> [--output=<file>] [<filename>]
	gpg-tool decrypt [--output=<file>] [<filename>]

Options:
	-h --help            Show this screen
	   --secret          Delete the secret key rather than the public key
	   --to=<fingerprint>  Encrypt to the key with this fingerprint
	   --output=<file>   Write to this file rather than stdout

Where a command takes an optional <filename>, leaving it out makes the
command read from stdin instead.`

func usage() string {
	return fmt.Sprintf(usageTemplate,
		Version,
		Config.GetFilename(),
		out.GetLogFilename(),
	)
}

// Main is the main entry point to the `gpg-tool` command.
func Main() exitCode {
	log.Print("$ " + strings.Join(os.Args, " "))
	args, _ := docopt.ParseDoc(usage())

	switch getSubcommand(args, []string{
		"version", "fingerprint", "have-key", "import", "delete", "encrypt", "decrypt",
	}) {
	case "version":
		return showVersion()

	case "fingerprint":
		return showFingerprint(optionalFilename(args))

	case "have-key":
		fingerprint, err := args.String("<fingerprint>")
		if err != nil {
			log.Panic(err)
		}
		return haveKey(fingerprint)

	case "import":
		return importKeys(optionalFilename(args))

	case "delete":
		fingerprint, err := args.String("<fingerprint>")
		if err != nil {
			log.Panic(err)
		}
		secret, err := args.Bool("--secret")
		if err != nil {
			log.Panic(err)
		}
		return deleteKey(fingerprint, secret)

	case "encrypt":
		recipient, err := args.String("--to")
		if err != nil {
			log.Panic(err)
		}
		return encryptToKey(recipient, optionalFilename(args), optionalOutputFilename(args))

	case "decrypt":
		return decryptMessage(optionalFilename(args), optionalOutputFilename(args))

	default:
		out.Print("unhandled subcommand\n")
		return 1
	}
}

func getSubcommand(args docopt.Opts, subcommands []string) string {
	for _, subcommand := range subcommands {
		value, err := args.Bool(subcommand)
		if err != nil {
			log.Panic(err)
		}
		if value {
			return subcommand
		}
	}
	log.Panicf("expected to find one of these subcommands: %v", subcommands)
	panic(nil)
}

func optionalFilename(args docopt.Opts) string {
	if args["<filename>"] == nil {
		return ""
	}
	filename, err := args.String("<filename>")
	if err != nil {
		log.Panic(err)
	}
	return filename
}

func optionalOutputFilename(args docopt.Opts) string {
	if args["--output"] == nil {
		return ""
	}
	filename, err := args.String("--output")
	if err != nil {
		log.Panic(err)
	}
	return filename
}

// readInput returns the contents of filename, or everything from stdin if
// filename is empty.
func readInput(filename string) ([]byte, error) {
	if filename != "" {
		data, err := ioutil.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", filename, err)
		}
		return data, nil
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %v", err)
	}
	return data, nil
}

func promptForInputWithPipes(prompt string, reader *bufio.Reader) string {
	out.Print(prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		log.Panic(err)
	}
	out.Print("\n")
	return strings.TrimRight(response, "\n")
}

func promptForInput(prompt string) string {
	return promptForInputWithPipes(prompt, bufio.NewReader(os.Stdin))
}

type interactiveYesNoPrompter struct{}

func (iP *interactiveYesNoPrompter) promptYesNo(message string, defaultInput string) bool {
	var options string
	switch strings.ToLower(defaultInput) {
	case "y":
		options = "[Y/n]"
	case "n":
		options = "[y/N]"
	default:
		options = "[y/n]"
	}
	messageWithOptions := message + " " + options + " "
	for {
		input := promptForInput(messageWithOptions)
		if input == "" {
			input = defaultInput
		}
		switch strings.ToLower(input) {
		case "y":
			return true
		case "n":
			return false
		default:
			out.Print("Please select only Y or N.\n")
		}
	}
}
