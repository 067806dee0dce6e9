// Copyright 2019 Paul Furley and Ian Drysdale
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
	"bytes"
	"os"

	"github.com/fluidkeys/gpg/colour"
	fpr "github.com/fluidkeys/gpg/fingerprint"
	"github.com/fluidkeys/gpg/out"
	"github.com/fluidkeys/gpg/ui"
)

func encryptToKey(recipientString string, filename string, outputFilename string) exitCode {
	if outputFilename == "" {
		// the ciphertext goes to stdout, so messages move to stderr
		out.SetOutputToStderr()
	}

	recipient, err := fpr.Parse(recipientString)
	if err != nil {
		printFailed("'" + recipientString + "' doesn't look like a key fingerprint")
		return 1
	}

	plaintext, err := readInput(filename)
	if err != nil {
		printFailed(err.Error())
		return 1
	}

	if outputFilename != "" {
		if err := gpg.EncryptToFile(bytes.NewReader(plaintext), recipient, outputFilename); err != nil {
			printEncryptFailed(recipient, err)
			return 1
		}

		printSuccess("Encrypted to " + outputFilename)
		return 0
	}

	if err := gpg.Encrypt(bytes.NewReader(plaintext), recipient, os.Stdout); err != nil {
		printEncryptFailed(recipient, err)
		return 1
	}
	return 0
}

func printEncryptFailed(recipient fpr.Fingerprint, err error) {
	out.Print(ui.FormatFailure(
		"Failed to encrypt to "+recipient.String(), []string{
			"Check the key has been imported by running " +
				colour.Cmd("gpg-tool have-key "+recipient.Hex()),
		},
		err,
	))
}
