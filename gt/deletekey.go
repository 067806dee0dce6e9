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

	"github.com/fluidkeys/gpg/colour"
	fpr "github.com/fluidkeys/gpg/fingerprint"
	"github.com/fluidkeys/gpg/out"
	"github.com/fluidkeys/gpg/ui"
)

func deleteKey(fingerprintString string, secret bool) exitCode {
	fingerprint, err := fpr.Parse(fingerprintString)
	if err != nil {
		printFailed("'" + fingerprintString + "' doesn't look like a key fingerprint")
		return 1
	}

	if secret {
		return deleteSecretKey(fingerprint)
	}
	return deletePublicKey(fingerprint)
}

func deletePublicKey(fingerprint fpr.Fingerprint) exitCode {
	if err := gpg.DeletePublicKey(fingerprint); err != nil {
		if haveSecretKey, secretErr := gpg.HaveSecretKey(fingerprint); secretErr == nil && haveSecretKey {
			out.Print(ui.FormatFailure(
				"Couldn't delete the key", []string{
					"GnuPG won't delete a key while its secret key is still present.",
					"Delete the secret key first by running " +
						colour.Cmd("gpg-tool delete --secret "+fingerprint.Hex()),
				},
				err,
			))
		} else {
			printFailed("Failed to delete the key: " + err.Error())
		}
		return 1
	}

	if err := db.RemoveFingerprintImportedIntoGnuPG(fingerprint); err != nil {
		log.Printf("failed to remove fingerprint from database: %v", err)
	}

	printSuccess("Deleted the key " + fingerprint.String())
	return 0
}

func deleteSecretKey(fingerprint fpr.Fingerprint) exitCode {
	if err := gpg.DeleteSecretKey(fingerprint); err != nil {
		printFailed("Failed to delete the secret key: " + err.Error())
		return 1
	}

	// keep the fingerprint in the database: the public half is still in
	// GnuPG until `gpg-tool delete <fingerprint>` removes it too.
	printSuccess("Deleted the secret key " + fingerprint.String())
	return 0
}
