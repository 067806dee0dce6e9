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

	fpr "github.com/fluidkeys/gpg/fingerprint"
)

// GnuPGInterface allows mocking out GnuPG for testing
type GnuPGInterface interface {
	Version() (string, error)
	IsWorking() bool
	GetFingerprint(armoredKey string) (fpr.Fingerprint, error)
	HaveKey(fpr.Fingerprint) (bool, error)
	HaveSecretKey(fpr.Fingerprint) (bool, error)
	ImportArmoredKey(armoredKey string) (fpr.Fingerprint, error)
	DeletePublicKey(fpr.Fingerprint) error
	DeleteSecretKey(fpr.Fingerprint) error
	Encrypt(plaintext io.Reader, recipient fpr.Fingerprint, ciphertext io.Writer) error
	EncryptToFile(plaintext io.Reader, recipient fpr.Fingerprint, outputPath string) error
	Decrypt(ciphertext io.Reader, passphrase string, plaintext io.Writer) error
	DecryptFile(inputPath string, passphrase string, outputPath string) error
}

var _ GnuPGInterface = (*GnuPG)(nil)
