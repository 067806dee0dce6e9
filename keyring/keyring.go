package keyring

import (
	"fmt"
	"log"

	externalkeyring "github.com/99designs/keyring"
	"github.com/fluidkeys/gpg/fingerprint"
)

// Load initialises the underlying system keyring and returns a Keyring which
// provides accessor methods.
func Load() (*Keyring, error) {
	return load(externalkeyring.AvailableBackends())
}

func load(allowedBackends []externalkeyring.BackendType) (*Keyring, error) {
	ring, err := externalkeyring.Open(externalkeyring.Config{
		ServiceName:     keyringServiceName,
		AllowedBackends: allowedBackends,
	})

	if err != nil {
		return &Keyring{noBackend: true}, nil
	}

	return &Keyring{realKeyring: ring, noBackend: false}, nil
}

type Keyring struct {
	realKeyring externalkeyring.Keyring
	noBackend   bool // if true, all calls just return nothing
}

// SavePassphrase stores the given passphrase in the keyring against the key
// and returns any error encountered in the underlying keyring.
func (k *Keyring) SavePassphrase(fp fingerprint.Fingerprint, passphrase string) error {
	if k.noBackend {
		return nil
	}

	return k.realKeyring.Set(
		externalkeyring.Item{
			Key:   makeKeyringKey(fp),
			Label: makeKeyringLabel(fp),
			Data:  []byte(passphrase),
		},
	)
}

// LoadPassphrase attempts to load a passphrase for the given key, first from
// the passphrase file if one is configured in the environment, then from the
// keyring. Returns (passphrase, gotPassphrase).
func (k *Keyring) LoadPassphrase(fp fingerprint.Fingerprint) (passphrase string, gotPassphrase bool) {
	if passphrase, gotPassphrase = tryLoadFromPassphraseFile(fp); gotPassphrase {
		return passphrase, true
	}

	if k.noBackend {
		return "", false
	}

	item, err := k.realKeyring.Get(makeKeyringKey(fp))
	if err != nil {
		if !isNotFoundError(err) {
			log.Printf("unexpected error from keyring Get: %v", err)
		}
		return "", false
	}
	return string(item.Data), true
}

// PurgePassphrase deletes the key from the keyring or returns an error if it
// encounters one with the underlying keyring.
// If the keyring announces the key wasn't found, PurgePassphrase swallows
// that particular error.
func (k *Keyring) PurgePassphrase(fp fingerprint.Fingerprint) error {
	if k.noBackend {
		return nil
	}

	err := k.realKeyring.Remove(makeKeyringKey(fp))
	if err != nil && !isNotFoundError(err) {
		// ignore the is-not-found error since it means the passphrase
		// is already purged
		return err
	}
	return nil
}

func isNotFoundError(err error) bool {
	return err == externalkeyring.ErrKeyNotFound
}

func makeKeyringKey(fp fingerprint.Fingerprint) string {
	return fmt.Sprintf("gpgtool.pgpkey.%s", fp.Hex())
}

func makeKeyringLabel(fp fingerprint.Fingerprint) string {
	return fmt.Sprintf("gpg-tool passphrase for PGP key %s", fp.Hex())
}

const keyringServiceName string = "login"
