// gpgwrapper calls out to the system GnuPG binary

package gpgwrapper

import (
	"fmt"
	"os"
	"path/filepath"
)

// GpgPath is the name of the GnuPG binary to invoke if the caller doesn't
// override it with Options.GpgPath. It's searched for in $PATH.
const GpgPath = "gpg"

// TrustModel tells GnuPG how to decide whether a key is trusted for
// operations like encryption. The zero value leaves the decision to
// GnuPG's own default.
type TrustModel string

const (
	TrustModelPGP     = TrustModel("pgp")
	TrustModelClassic = TrustModel("classic")
	TrustModelDirect  = TrustModel("direct")
	TrustModelAlways  = TrustModel("always")
	TrustModelAuto    = TrustModel("auto")
)

// ParseTrustModel takes a string like "always" and returns the matching
// TrustModel, or an error if the string isn't one GnuPG accepts.
func ParseTrustModel(model string) (TrustModel, error) {
	switch TrustModel(model) {
	case TrustModelPGP, TrustModelClassic, TrustModelDirect, TrustModelAlways, TrustModelAuto:
		return TrustModel(model), nil
	}
	return TrustModel(""), fmt.Errorf(
		"invalid trust model '%s', accepted values are pgp, classic, direct, always, auto", model)
}

// Options configures how a GnuPG returned by LoadWithOptions calls the
// binary.
//
// PublicKeyringPath and SecretKeyringPath must be set together: when they
// are, every invocation is scoped to those keyring files instead of the ones
// in the GnuPG home directory. The files are created empty if they don't
// exist yet.
type Options struct {
	// HomeDir overrides GnuPG's home directory (--homedir). Leave empty
	// to use the calling user's own ~/.gnupg.
	HomeDir string

	// PublicKeyringPath is the public keyring file to scope invocations
	// to, e.g. "/home/alice/.config/gpg-tool/pubring.gpg".
	PublicKeyringPath string

	// SecretKeyringPath is the secret keyring file to scope invocations
	// to.
	SecretKeyringPath string

	// TrustModel overrides GnuPG's trust model for all invocations.
	TrustModel TrustModel

	// GpgPath overrides the name or path of the GnuPG binary.
	GpgPath string
}

// GnuPG wraps a GnuPG binary with a fixed set of global arguments. The zero
// value is usable and calls `gpg` with its defaults, but most callers should
// get one from Load, LoadWithKeyrings or LoadWithOptions, which check that
// the binary actually works.
type GnuPG struct {
	homeDir           string
	publicKeyringPath string
	secretKeyringPath string
	trustModel        TrustModel
	gpgPath           string
	version           string
}

// Load returns a GnuPG that calls the system gpg binary with its default
// home directory and keyrings, or an error if gpg isn't installed or
// doesn't appear to work.
func Load() (*GnuPG, error) {
	return LoadWithOptions(Options{})
}

// LoadWithKeyrings returns a GnuPG scoped to the given public and secret
// keyring files, creating them empty if they don't exist.
func LoadWithKeyrings(publicKeyringPath string, secretKeyringPath string) (*GnuPG, error) {
	return LoadWithOptions(Options{
		PublicKeyringPath: publicKeyringPath,
		SecretKeyringPath: secretKeyringPath,
	})
}

// LoadWithOptions returns a GnuPG configured from options. It validates the
// options, then runs `gpg --version` once to check the binary works and to
// record which version it's dealing with.
func LoadWithOptions(options Options) (*GnuPG, error) {
	gpg := GnuPG{
		homeDir:    options.HomeDir,
		trustModel: options.TrustModel,
		gpgPath:    options.GpgPath,
	}

	if gpg.trustModel != "" {
		if _, err := ParseTrustModel(string(gpg.trustModel)); err != nil {
			return nil, err
		}
	}

	if (options.PublicKeyringPath == "") != (options.SecretKeyringPath == "") {
		return nil, fmt.Errorf("public and secret keyring paths must be set together")
	}

	if options.PublicKeyringPath != "" {
		// GnuPG treats keyring filenames without a slash as relative
		// to its home directory, so always pass absolute paths.
		var err error
		if gpg.publicKeyringPath, err = filepath.Abs(options.PublicKeyringPath); err != nil {
			return nil, err
		}
		if gpg.secretKeyringPath, err = filepath.Abs(options.SecretKeyringPath); err != nil {
			return nil, err
		}

		if err = ensureFileExists(gpg.publicKeyringPath); err != nil {
			return nil, fmt.Errorf("couldn't create public keyring: %v", err)
		}
		if err = ensureFileExists(gpg.secretKeyringPath); err != nil {
			return nil, fmt.Errorf("couldn't create secret keyring: %v", err)
		}
	}

	version, err := gpg.Version()
	if err != nil {
		return nil, err
	}
	gpg.version = version

	if gpg.publicKeyringPath != "" {
		// fail now, not on first use, if gpg can't read the keyrings
		if _, _, err := gpg.run("--list-keys"); err != nil {
			return nil, fmt.Errorf(
				"public keyring %s isn't usable: %v", gpg.publicKeyringPath, err)
		}
		if _, _, err := gpg.run("--list-secret-keys"); err != nil {
			return nil, fmt.Errorf(
				"secret keyring %s isn't usable: %v", gpg.secretKeyringPath, err)
		}
	}

	return &gpg, nil
}

// Version returns the version string of the GnuPG binary, e.g. "2.2.40"
func (g *GnuPG) Version() (string, error) {
	stdout, _, err := g.run("--version")

	if err != nil {
		return "", fmt.Errorf("problem running GPG, %v", err)
	}

	version, err := parseVersionString(stdout)

	if err != nil {
		return "", fmt.Errorf("problem parsing version string, %v", err)
	}

	return version, nil
}

// IsWorking checks whether the GnuPG binary can be run at all.
func (g *GnuPG) IsWorking() bool {
	_, err := g.Version()

	return err == nil
}

func (g *GnuPG) path() string {
	if g.gpgPath != "" {
		return g.gpgPath
	}
	return GpgPath
}

// supportsPinentryLoopback reports whether the binary understands
// `--pinentry-mode loopback`, which GnuPG needs from 2.1 onwards before it
// accepts a passphrase given with `--passphrase`. GnuPG 1.x takes the
// passphrase directly and rejects the option.
func (g *GnuPG) supportsPinentryLoopback() bool {
	version := g.version
	if version == "" {
		var err error
		if version, err = g.Version(); err != nil {
			return false
		}
	}

	major, minor, _, err := parseVersionParts(version)
	if err != nil {
		return false
	}
	return major > 2 || (major == 2 && minor >= 1)
}

// prependGlobalArguments prefixes the given operation arguments with the
// global arguments every invocation gets: the fixed batch flags, then the
// home directory, trust model and keyring scoping flags if they're
// configured.
func (g *GnuPG) prependGlobalArguments(arguments ...string) []string {
	globalArguments := []string{
		"--batch",
		"--no-tty",
		"--keyid-format", "0xlong",
	}
	if g.homeDir != "" {
		globalArguments = append(globalArguments, "--homedir", g.homeDir)
	}
	if g.trustModel != "" {
		globalArguments = append(globalArguments, "--trust-model", string(g.trustModel))
	}
	if g.publicKeyringPath != "" {
		globalArguments = append(globalArguments,
			"--no-default-keyring",
			"--secret-keyring", g.secretKeyringPath,
			"--keyring", g.publicKeyringPath,
		)
	}
	return append(globalArguments, arguments...)
}

func ensureFileExists(filename string) error {
	f, err := os.OpenFile(filename, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	return f.Close()
}
