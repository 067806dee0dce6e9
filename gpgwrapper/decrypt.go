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

package gpgwrapper

import (
	"io"
	"io/ioutil"
	"strings"
)

const badPassphrase = "Bad passphrase"

// Decrypt decrypts the ciphertext read from the given reader with the given
// passphrase, writing the plaintext to the given writer.
//
// A wrong passphrase or corrupt ciphertext surfaces as a *Error, see
// IsBadPasswordError.
func (g *GnuPG) Decrypt(ciphertext io.Reader, passphrase string, plaintext io.Writer) error {
	arguments := append(g.decryptArguments(passphrase), "-d")

	_, err := g.runWithStdio(ciphertext, plaintext, arguments...)
	return err
}

// DecryptFile decrypts the file at inputPath with the given passphrase,
// having gpg write the plaintext straight to the file at outputPath. gpg
// refuses to overwrite an existing file.
func (g *GnuPG) DecryptFile(inputPath string, passphrase string, outputPath string) error {
	arguments := append(
		g.decryptArguments(passphrase), "--output", outputPath, "-d", inputPath,
	)

	_, err := g.runWithStdio(nil, ioutil.Discard, arguments...)
	return err
}

func (g *GnuPG) decryptArguments(passphrase string) []string {
	arguments := []string{}
	if g.supportsPinentryLoopback() {
		// gpg >= 2.1 ignores --passphrase unless loopback pinentry is
		// selected
		arguments = append(arguments, "--pinentry-mode", "loopback")
	}
	return append(arguments, "--passphrase", passphrase)
}

// IsBadPasswordError returns whether the given error is gpg reporting that a
// decryption passphrase was wrong.
func IsBadPasswordError(err error) bool {
	gpgError, ok := err.(*Error)
	return ok && strings.Contains(gpgError.Stderr, badPassphrase)
}
