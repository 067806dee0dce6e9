package database

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/fluidkeys/gpg/fingerprint"
)

// Database records which keys have been imported into gpg-tool's keyring, so
// commands like decrypt can tell which secret keys are worth trying without
// asking gpg to list everything.
type Database struct {
	jsonFilename string
}

type DatabaseMessage struct {
	KeysImportedIntoGnuPG []KeyImportedIntoGnuPGMessage
}

type KeyImportedIntoGnuPGMessage struct {
	Fingerprint fingerprint.Fingerprint
}

func New(gpgToolDirectory string) Database {
	jsonFilename := filepath.Join(gpgToolDirectory, "db.json")
	return Database{jsonFilename: jsonFilename}
}

func (db *Database) RecordFingerprintImportedIntoGnuPG(newFingerprint fingerprint.Fingerprint) error {
	existingFingerprints, err := db.GetFingerprintsImportedIntoGnuPG()
	if err != nil {
		return err
	}

	allFingerprints := append(existingFingerprints, newFingerprint)
	return db.saveFingerprints(allFingerprints)
}

// RemoveFingerprintImportedIntoGnuPG drops the given fingerprint from the
// recorded imports, e.g. after the key has been deleted from the keyring.
// Removing a fingerprint that was never recorded isn't an error.
func (db *Database) RemoveFingerprintImportedIntoGnuPG(fingerprintToRemove fingerprint.Fingerprint) error {
	existingFingerprints, err := db.GetFingerprintsImportedIntoGnuPG()
	if err != nil {
		return err
	}

	var remainingFingerprints []fingerprint.Fingerprint
	for _, existingFingerprint := range existingFingerprints {
		if existingFingerprint != fingerprintToRemove {
			remainingFingerprints = append(remainingFingerprints, existingFingerprint)
		}
	}

	return db.saveFingerprints(remainingFingerprints)
}

func (db *Database) GetFingerprintsImportedIntoGnuPG() ([]fingerprint.Fingerprint, error) {
	file, err := os.Open(db.jsonFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return []fingerprint.Fingerprint{}, nil
		} else {
			return nil, fmt.Errorf("Couldn't open '%s': %v", db.jsonFilename, err)
		}
	}
	defer file.Close()

	byteValue, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("ioutil.ReadAll(..) error: %v", err)
	}

	if len(byteValue) == 0 {
		return []fingerprint.Fingerprint{}, nil
	}

	var databaseMessage DatabaseMessage

	if err := json.Unmarshal(byteValue, &databaseMessage); err != nil {
		return nil, fmt.Errorf("Couldn't parse '%s': %v", db.jsonFilename, err)
	}

	var fingerprints []fingerprint.Fingerprint

	for _, v := range databaseMessage.KeysImportedIntoGnuPG {
		fingerprints = append(fingerprints, v.Fingerprint)
	}

	return deduplicate(fingerprints), nil
}

func (db *Database) saveFingerprints(fingerprints []fingerprint.Fingerprint) error {
	databaseMessage := makeDatabaseMessageFromFingerprints(fingerprints)

	file, err := os.Create(db.jsonFilename)
	if err != nil {
		return fmt.Errorf("Couldn't open '%s': %v", db.jsonFilename, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")

	return encoder.Encode(databaseMessage)
}

func makeDatabaseMessageFromFingerprints(fingerprints []fingerprint.Fingerprint) DatabaseMessage {
	var messages []KeyImportedIntoGnuPGMessage

	for _, fingerprint := range fingerprints {
		messages = append(messages, KeyImportedIntoGnuPGMessage{Fingerprint: fingerprint})
	}

	databaseMessage := DatabaseMessage{
		KeysImportedIntoGnuPG: messages,
	}
	return databaseMessage
}

func deduplicate(slice []fingerprint.Fingerprint) []fingerprint.Fingerprint {
	sliceMap := make(map[fingerprint.Fingerprint]bool)
	for _, v := range slice {
		sliceMap[v] = true
	}

	var deduped []fingerprint.Fingerprint
	for key := range sliceMap {
		deduped = append(deduped, key)
	}
	return deduped
}
