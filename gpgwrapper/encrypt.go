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

	"github.com/fluidkeys/gpg/fingerprint"
)

// Encrypt encrypts the plaintext to the public key with the given
// fingerprint, writing the ciphertext to the given writer.
//
// gpg decides for itself whether the recipient key is usable: encrypting to
// an unknown or invalid key fails with a *Error. Keys that aren't certified
// need the trust model set to TrustModelAlways.
func (g *GnuPG) Encrypt(
	plaintext io.Reader, recipient fingerprint.Fingerprint, ciphertext io.Writer) error {

	_, err := g.runWithStdio(
		plaintext, ciphertext,
		"-r", recipient.Hex(), "--encrypt", "--output", "-",
	)
	return err
}

// EncryptToFile is like Encrypt but has gpg write the ciphertext straight to
// the file at outputPath. gpg refuses to overwrite an existing file.
func (g *GnuPG) EncryptToFile(
	plaintext io.Reader, recipient fingerprint.Fingerprint, outputPath string) error {

	_, err := g.runWithStdio(
		plaintext, ioutil.Discard,
		"-r", recipient.Hex(), "--encrypt", "--output", outputPath,
	)
	return err
}
