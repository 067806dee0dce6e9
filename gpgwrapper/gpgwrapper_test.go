package gpgwrapper

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fluidkeys/gpg/assert"
	"github.com/fluidkeys/gpg/testhelpers"
)

func TestPrependGlobalArguments(t *testing.T) {

	t.Run("with a zero value GnuPG", func(t *testing.T) {
		gpg := GnuPG{}

		got := gpg.prependGlobalArguments("--encrypt")
		assert.AssertEqualSliceOfStrings(t, []string{
			"--batch", "--no-tty", "--keyid-format", "0xlong",
			"--encrypt",
		}, got)
	})

	t.Run("with a trust model", func(t *testing.T) {
		gpg := GnuPG{trustModel: TrustModelAlways}

		got := gpg.prependGlobalArguments("--encrypt")
		assert.AssertEqualSliceOfStrings(t, []string{
			"--batch", "--no-tty", "--keyid-format", "0xlong",
			"--trust-model", "always",
			"--encrypt",
		}, got)
	})

	t.Run("with keyring scoping", func(t *testing.T) {
		gpg := GnuPG{
			publicKeyringPath: "/tmp/pubring.gpg",
			secretKeyringPath: "/tmp/secring.gpg",
		}

		got := gpg.prependGlobalArguments("--encrypt")
		assert.AssertEqualSliceOfStrings(t, []string{
			"--batch", "--no-tty", "--keyid-format", "0xlong",
			"--no-default-keyring",
			"--secret-keyring", "/tmp/secring.gpg",
			"--keyring", "/tmp/pubring.gpg",
			"--encrypt",
		}, got)
	})

	t.Run("with everything configured", func(t *testing.T) {
		gpg := GnuPG{
			homeDir:           "/tmp/gnupghome",
			publicKeyringPath: "/tmp/pubring.gpg",
			secretKeyringPath: "/tmp/secring.gpg",
			trustModel:        TrustModelPGP,
		}

		got := gpg.prependGlobalArguments("--fingerprint", "A999B7498D1A8DC473E53C92309F635DAD1B5517")
		assert.AssertEqualSliceOfStrings(t, []string{
			"--batch", "--no-tty", "--keyid-format", "0xlong",
			"--homedir", "/tmp/gnupghome",
			"--trust-model", "pgp",
			"--no-default-keyring",
			"--secret-keyring", "/tmp/secring.gpg",
			"--keyring", "/tmp/pubring.gpg",
			"--fingerprint", "A999B7498D1A8DC473E53C92309F635DAD1B5517",
		}, got)
	})

	t.Run("with no operation arguments", func(t *testing.T) {
		gpg := GnuPG{}

		got := gpg.prependGlobalArguments()
		assert.AssertEqualSliceOfStrings(t, []string{
			"--batch", "--no-tty", "--keyid-format", "0xlong",
		}, got)
	})
}

func TestParseTrustModel(t *testing.T) {

	t.Run("accepts each model gpg understands", func(t *testing.T) {
		for _, model := range []string{"pgp", "classic", "direct", "always", "auto"} {
			got, err := ParseTrustModel(model)
			assert.NoError(t, err)
			assert.Equal(t, TrustModel(model), got)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := ParseTrustModel("web-of-trust")
		assert.GotError(t, err)
		assert.Equal(t,
			"invalid trust model 'web-of-trust', accepted values are "+
				"pgp, classic, direct, always, auto",
			err.Error())
	})
}

func TestLoadWithOptions(t *testing.T) {

	t.Run("rejects a public keyring without a secret keyring", func(t *testing.T) {
		_, err := LoadWithOptions(Options{PublicKeyringPath: "/tmp/pubring.gpg"})
		assert.GotError(t, err)
		assert.Equal(t, "public and secret keyring paths must be set together", err.Error())
	})

	t.Run("rejects a secret keyring without a public keyring", func(t *testing.T) {
		_, err := LoadWithOptions(Options{SecretKeyringPath: "/tmp/secring.gpg"})
		assert.GotError(t, err)
		assert.Equal(t, "public and secret keyring paths must be set together", err.Error())
	})

	t.Run("rejects a made up trust model", func(t *testing.T) {
		_, err := LoadWithOptions(Options{TrustModel: TrustModel("made-up")})
		assert.GotError(t, err)
	})

	t.Run("creates missing keyring files", func(t *testing.T) {
		requireGpg(t)
		homeDir := testhelpers.Maketemp(t)
		defer os.RemoveAll(homeDir)

		gpg, err := LoadWithOptions(Options{
			HomeDir:           homeDir,
			PublicKeyringPath: filepath.Join(homeDir, "pubring.gpg"),
			SecretKeyringPath: filepath.Join(homeDir, "secring.gpg"),
		})
		assert.NoError(t, err)

		for _, filename := range []string{"pubring.gpg", "secring.gpg"} {
			if _, err := os.Stat(filepath.Join(homeDir, filename)); err != nil {
				t.Fatalf("expected %s to have been created: %v", filename, err)
			}
		}

		if gpg.version == "" {
			t.Fatalf("expected the version to have been recorded at load time")
		}
	})

	t.Run("rejects a public keyring file gpg can't read", func(t *testing.T) {
		requireGpg(t)
		homeDir := testhelpers.Maketemp(t)
		defer os.RemoveAll(homeDir)

		garbage := testhelpers.WriteTempFile(
			t, homeDir, "pubring.gpg", []byte("this is not a keyring"))

		_, err := LoadWithOptions(Options{
			HomeDir:           homeDir,
			PublicKeyringPath: garbage,
			SecretKeyringPath: filepath.Join(homeDir, "secring.gpg"),
		})
		assert.GotError(t, err)
	})
}

func TestVersion(t *testing.T) {
	requireGpg(t)

	gpg := GnuPG{}
	version, err := gpg.Version()
	assert.NoError(t, err)

	if _, _, _, err := parseVersionParts(version); err != nil {
		t.Fatalf("expected a version like '2.2.4', got '%s'", version)
	}
}

func TestIsWorking(t *testing.T) {

	t.Run("true for a working binary", func(t *testing.T) {
		requireGpg(t)

		gpg := GnuPG{}
		assert.Equal(t, true, gpg.IsWorking())
	})

	t.Run("false when the binary doesn't exist", func(t *testing.T) {
		gpg := GnuPG{gpgPath: "/nonexistent/gpg"}
		assert.Equal(t, false, gpg.IsWorking())
	})
}

// makeGpgWithTempHome returns a GnuPG scoped to a freshly made home
// directory and keyring pair, isolated from the user's own keyrings and
// from other tests. The caller must remove the returned directory,
// typically with `defer os.RemoveAll(homeDir)`.
func makeGpgWithTempHome(t *testing.T) (*GnuPG, string) {
	t.Helper()
	requireGpg(t)

	homeDir := testhelpers.Maketemp(t)

	gpg, err := LoadWithOptions(Options{
		HomeDir:           homeDir,
		PublicKeyringPath: filepath.Join(homeDir, "pubring.gpg"),
		SecretKeyringPath: filepath.Join(homeDir, "secring.gpg"),
		TrustModel:        TrustModelAlways,
	})
	if err != nil {
		os.RemoveAll(homeDir)
		t.Fatalf("failed to load gpg: %v", err)
	}
	return gpg, homeDir
}

// requireGpg skips the test if the gpg binary isn't installed.
func requireGpg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(GpgPath); err != nil {
		t.Skipf("skipping, %s not found in PATH", GpgPath)
	}
}
