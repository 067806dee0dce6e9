// Copyright 2018 Paul Furley and Ian Drysdale
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
	"fmt"
	"io"
	"log"

	fpr "github.com/fluidkeys/gpg/fingerprint"
	"github.com/fluidkeys/gpg/gpgwrapper"
	"github.com/fluidkeys/gpg/out"
	"golang.org/x/crypto/ssh/terminal"
)

const maxPassphraseAttempts = 6

// decryptCiphertext decrypts ciphertext into plaintext, trying passphrases
// saved in the system keyring before falling back to prompting the user.
// If a prompted passphrase works it offers to save it for next time.
func decryptCiphertext(
	ciphertext []byte, plaintext io.Writer, decrypter decrypterInterface,
	prompter promptForPassphraseInterface) error {

	passphrase, wasPrompted, err := decryptWithPassphrases(
		ciphertext, plaintext, decrypter, storedPassphrases(), prompter)
	if err != nil {
		return err
	}

	if wasPrompted {
		offerToStorePassphrase(passphrase)
	}
	return nil
}

// decryptWithPassphrases tries each stored passphrase against the
// ciphertext, then prompts, retrying while gpg says the passphrase is bad.
// It returns the passphrase that worked and whether it came from the
// prompter.
func decryptWithPassphrases(
	ciphertext []byte, plaintext io.Writer, decrypter decrypterInterface,
	storedPassphrases map[fpr.Fingerprint]string,
	prompter promptForPassphraseInterface) (passphrase string, wasPrompted bool, err error) {

	for fingerprint, storedPassphrase := range storedPassphrases {
		log.Printf("trying stored passphrase for %s", fingerprint.Hex())

		err := decrypter.Decrypt(bytes.NewReader(ciphertext), storedPassphrase, plaintext)
		if err == nil {
			return storedPassphrase, false, nil
		}
		if !gpgwrapper.IsBadPasswordError(err) {
			return "", false, err
		}
		printWarning("Stored passphrase for " + fingerprint.String() + " appeared to be incorrect")
	}

	for attempt := 0; attempt < maxPassphraseAttempts; attempt++ {
		passphrase, err := prompter.promptForPassphrase()
		if err != nil {
			return "", true, err
		}

		err = decrypter.Decrypt(bytes.NewReader(ciphertext), passphrase, plaintext)
		if err == nil {
			return passphrase, true, nil
		}
		if !gpgwrapper.IsBadPasswordError(err) {
			return "", true, err
		}
		printWarning("Passphrase appeared to be incorrect")
	}

	return "", true, fmt.Errorf("too many bad passphrase attempts")
}

// storedPassphrases returns the passphrases saved in the system keyring for
// keys recorded as imported into GnuPG, purging any whose keys are
// configured not to store one.
func storedPassphrases() map[fpr.Fingerprint]string {
	passphrases := map[fpr.Fingerprint]string{}

	fingerprints, err := db.GetFingerprintsImportedIntoGnuPG()
	if err != nil {
		log.Printf("error getting fingerprints from database: %v", err)
		return passphrases
	}

	for _, fingerprint := range fingerprints {
		if !Config.ShouldStorePassphrase(fingerprint) {
			if err := Keyring.PurgePassphrase(fingerprint); err != nil {
				log.Printf("failed to purge passphrase: %v", err)
			}
			continue
		}

		if passphrase, gotPassphrase := Keyring.LoadPassphrase(fingerprint); gotPassphrase {
			passphrases[fingerprint] = passphrase
		}
	}
	return passphrases
}

// offerToStorePassphrase saves back a passphrase that decrypted a message.
// gpg decides for itself which secret key a message is encrypted to, so the
// passphrase can only be filed against a fingerprint when exactly one secret
// key is in the keyring.
func offerToStorePassphrase(passphrase string) {
	fingerprint, err := onlySecretKeyFingerprint()
	if err != nil {
		log.Printf("not offering to save the passphrase: %v", err)
		return
	}

	if Config.ShouldStorePassphrase(fingerprint) {
		// already opted in: the stored passphrase must have been
		// missing or stale, so save the working one back
		if err := Keyring.SavePassphrase(fingerprint, passphrase); err != nil {
			log.Printf("got a good passphrase but failed to save it: %v", err)
		}
		return
	}

	prompter := interactiveYesNoPrompter{}
	if !prompter.promptYesNo("Save the passphrase to your system keyring?", "y") {
		return
	}

	if err := Config.SetStorePassphrase(fingerprint, true); err != nil {
		log.Printf("failed to update config: %v", err)
		return
	}
	if err := Keyring.SavePassphrase(fingerprint, passphrase); err != nil {
		log.Printf("got a good passphrase but failed to save it: %v", err)
	}
}

func onlySecretKeyFingerprint() (fpr.Fingerprint, error) {
	fingerprints, err := db.GetFingerprintsImportedIntoGnuPG()
	if err != nil {
		return fpr.Fingerprint{}, err
	}

	var secretKeyFingerprints []fpr.Fingerprint
	for _, fingerprint := range fingerprints {
		haveSecretKey, err := gpg.HaveSecretKey(fingerprint)
		if err != nil {
			return fpr.Fingerprint{}, err
		}
		if haveSecretKey {
			secretKeyFingerprints = append(secretKeyFingerprints, fingerprint)
		}
	}

	if len(secretKeyFingerprints) != 1 {
		return fpr.Fingerprint{}, fmt.Errorf(
			"expected 1 secret key, got %d", len(secretKeyFingerprints))
	}
	return secretKeyFingerprints[0], nil
}

type decrypterInterface interface {
	Decrypt(ciphertext io.Reader, passphrase string, plaintext io.Writer) error
}

type promptForPassphraseInterface interface {
	promptForPassphrase() (string, error)
}

type interactivePassphrasePrompter struct{}

// promptForPassphrase asks the user for a passphrase without echoing it back
// to the terminal.
func (p *interactivePassphrasePrompter) promptForPassphrase() (string, error) {
	out.Print("Enter passphrase: ")
	passphrase, err := terminal.ReadPassword(0)
	if err != nil {
		return "", fmt.Errorf("error reading passphrase: %v", err)
	}
	out.Print("\n\n")
	return string(passphrase), nil
}
