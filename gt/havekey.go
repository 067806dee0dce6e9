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
	fpr "github.com/fluidkeys/gpg/fingerprint"
)

// haveKey reports whether GnuPG has the public key with the given
// fingerprint. The exit code makes it usable from shell scripts.
func haveKey(fingerprintString string) exitCode {
	fingerprint, err := fpr.Parse(fingerprintString)
	if err != nil {
		printFailed("'" + fingerprintString + "' doesn't look like a key fingerprint")
		return 1
	}

	gotKey, err := gpg.HaveKey(fingerprint)
	if err != nil {
		printFailed("Error looking for the key: " + err.Error())
		return 1
	}

	if !gotKey {
		printInfo("GnuPG doesn't have the key " + fingerprint.String())
		return 1
	}

	printSuccess("GnuPG has the key " + fingerprint.String())
	return 0
}
