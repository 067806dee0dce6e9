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
	"github.com/fluidkeys/gpg/out"
)

// showFingerprint prints the fingerprint of an armored key without importing
// it into GnuPG.
func showFingerprint(filename string) exitCode {
	armoredKey, err := readInput(filename)
	if err != nil {
		printFailed(err.Error())
		return 1
	}

	fingerprint, err := gpg.GetFingerprint(string(armoredKey))
	if err != nil {
		printFailed("Couldn't get a fingerprint from the key: " + err.Error())
		return 1
	}

	out.Print(fingerprint.String() + "\n")
	return 0
}
