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
	"io/ioutil"
	"os"

	"github.com/fluidkeys/gpg/out"
	"github.com/fluidkeys/gpg/ui"
)

// decryptMessage decrypts a message, trying stored passphrases before
// prompting for one. The whole plaintext is buffered until gpg succeeds so a
// failed attempt never leaves partial output behind.
func decryptMessage(filename string, outputFilename string) exitCode {
	if outputFilename == "" {
		// the plaintext goes to stdout, so messages move to stderr
		out.SetOutputToStderr()
	}

	ciphertext, err := readInput(filename)
	if err != nil {
		printFailed(err.Error())
		return 1
	}

	plaintext := bytes.Buffer{}
	prompter := interactivePassphrasePrompter{}

	if err := decryptCiphertext(ciphertext, &plaintext, &gpg, &prompter); err != nil {
		out.Print(ui.FormatFailure("Failed to decrypt the message", nil, err))
		return 1
	}

	if outputFilename != "" {
		if err := ioutil.WriteFile(outputFilename, plaintext.Bytes(), 0600); err != nil {
			printFailed("Failed to write " + outputFilename + ": " + err.Error())
			return 1
		}

		printSuccess("Decrypted to " + outputFilename)
		return 0
	}

	if _, err := plaintext.WriteTo(os.Stdout); err != nil {
		printFailed("Failed to write the decrypted message: " + err.Error())
		return 1
	}
	return 0
}
