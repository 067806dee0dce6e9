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

func showVersion() exitCode {
	out.Print("gpg-tool " + Version + "\n")

	gpgVersion, err := gpg.Version()
	if err != nil {
		printFailed("Failed to get the GnuPG version: " + err.Error())
		return 1
	}

	out.Print("GnuPG " + gpgVersion + "\n")
	return 0
}
