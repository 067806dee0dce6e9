package keyring

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fluidkeys/gpg/fingerprint"
	"github.com/fluidkeys/gpg/out"
)

// Scripted use can't answer an interactive passphrase prompt, and on macOS
// the system keychain prompts for access in its own dialog. As a workaround
// we support reading passphrases for keys from a file specified by the user.
//
// In your ~/.bashrc, set the following:
// > export GPGTOOL_PASSPHRASES_TOML_FILE="$HOME/.gpgtool_passphrases.toml"
//
// Then add these lines to that file (replacing AAAA... with your key
// fingerprint)
//
//     [pgpkeys]
//         [pgpkeys.AAAA1111AAAA1111AAAA1111AAAA1111AAAA1111]
//         passphrase = "the quick brown fox"
//
// Finally, ensure that file isn't readable to other users:
// > chmod 0600 $HOME/.gpgtool_passphrases.toml

// tryLoadFromPassphraseFile looks in the environment for
// GPGTOOL_PASSPHRASES_TOML_FILE and if present, tries to parse it and
// extract a passphrase for the given key.
// Returns (passphrase, gotPassphrase)
func tryLoadFromPassphraseFile(fp fingerprint.Fingerprint) (string, bool) {
	passphraseFile := os.Getenv(environmentVariable)

	if passphraseFile != "" {
		out.Print(fmt.Sprintf("Reading passphrases from '%s'\n", passphraseFile))
		return loadPassphraseFromFile(passphraseFile, fp)
	}
	return "", false
}

// Returns (passphrase, gotPassphrase)
func loadPassphraseFromFile(filename string, fp fingerprint.Fingerprint) (string, bool) {
	var parsedConfig tomlConfig
	_, err := toml.DecodeFile(filename, &parsedConfig)

	if err != nil {
		panic(fmt.Errorf("failed to parse TOML file %s: %v\nUnset the environment variable %s to stop using it\n", filename, err, environmentVariable))
	}

	passphrases := make(map[fingerprint.Fingerprint]string)

	for configFingerprint, key := range parsedConfig.PgpKeys {
		if parsedFingerprint, err := fingerprint.Parse(configFingerprint); err == nil {
			passphrases[parsedFingerprint] = key.Passphrase
		} else {
			panic(fmt.Errorf("TOML file %s contained invalid OpenPGP fingerprint: '%s'\n", filename, configFingerprint))
		}
	}

	passphrase, gotPassphrase := passphrases[fp]

	return passphrase, gotPassphrase
}

type tomlConfig struct {
	PgpKeys map[string]key
}

type key struct {
	Passphrase string
}

const environmentVariable = "GPGTOOL_PASSPHRASES_TOML_FILE"
