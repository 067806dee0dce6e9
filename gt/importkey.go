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
	"log"
	"regexp"

	"github.com/fluidkeys/gpg/humanize"
	"github.com/fluidkeys/gpg/out"
)

// importKeys imports every armored key block found in the input into GnuPG
// and records the fingerprints for later commands like decrypt.
func importKeys(filename string) exitCode {
	input, err := readInput(filename)
	if err != nil {
		printFailed(err.Error())
		return 1
	}

	armoredKeys := splitArmoredBlocks(string(input))
	if len(armoredKeys) == 0 {
		printFailed("Didn't find a PGP key block in the input")
		return 1
	}

	importedCount := 0
	failedCount := 0

	for _, armoredKey := range armoredKeys {
		fingerprint, err := gpg.ImportArmoredKey(armoredKey)
		if err != nil {
			printFailed("Failed to import a key: " + err.Error())
			failedCount++
			continue
		}

		if err := db.RecordFingerprintImportedIntoGnuPG(fingerprint); err != nil {
			log.Printf("failed to record fingerprint in database: %v", err)
		}

		printSuccess("Imported " + fingerprint.String())
		importedCount++
	}

	out.Print("\n")
	printInfo("Imported " + humanize.Pluralize(importedCount, "key", "keys") + " into GnuPG")

	if failedCount > 0 {
		return 1
	}
	return 0
}

var armoredKeyBlockRegexp = regexp.MustCompile(
	`(?s)-----BEGIN PGP (PUBLIC|PRIVATE) KEY BLOCK-----` +
		`.*?` +
		`-----END PGP (PUBLIC|PRIVATE) KEY BLOCK-----`)

// splitArmoredBlocks returns each armored key block in the input, which may
// hold several blocks back to back, e.g. from `gpg --export --armor`.
func splitArmoredBlocks(input string) []string {
	return armoredKeyBlockRegexp.FindAllString(input, -1)
}
