package gpgwrapper

import (
	"errors"
	"testing"

	"github.com/fluidkeys/gpg/assert"
	"github.com/fluidkeys/gpg/fingerprint"
)

func TestParseGPGOutputVersion(t *testing.T) {

	t.Run("test GPG output from Ubuntu", func(t *testing.T) {
		gpgOutput := "foo\ngpg (GnuPG) 2.2.4\nbar"
		assert_parses_version_correctly(t, gpgOutput, "2.2.4")
	})

	t.Run("test GPG output from macOS", func(t *testing.T) {
		gpgOutput := "foo\ngpg (GnuPG/MacGPG2) 2.2.8\nbar"
		assert_parses_version_correctly(t, gpgOutput, "2.2.8")
	})

	t.Run("test long version numbers", func(t *testing.T) {
		gpgOutput := "foo\ngpg (GnuPG/MacGPG2) 111.222.333\nbar"
		assert_parses_version_correctly(t, gpgOutput, "111.222.333")
	})

	t.Run("test output not containing a version number", func(t *testing.T) {
		gpgOutput := "foo\ngpg\nbar"
		_, err := parseVersionString(gpgOutput)
		want := errors.New("version string not found in GPG output")
		assertError(t, err, want)
	})
}

func TestParseVersionParts(t *testing.T) {

	t.Run("parses a well formed version", func(t *testing.T) {
		major, minor, patch, err := parseVersionParts("2.1.18")
		assert.NoError(t, err)
		assert.Equal(t, 2, major)
		assert.Equal(t, 1, minor)
		assert.Equal(t, 18, patch)
	})

	t.Run("rejects a version with too few parts", func(t *testing.T) {
		_, _, _, err := parseVersionParts("2.2")
		assert.GotError(t, err)
	})

	t.Run("rejects a version with non numeric parts", func(t *testing.T) {
		_, _, _, err := parseVersionParts("two.2.4")
		assert.GotError(t, err)
	})
}

func TestParseFingerprint(t *testing.T) {

	t.Run("extracts the fingerprint from show-key output", func(t *testing.T) {
		got, err := parseFingerprint(exampleShowKeyOutput)
		assert.NoError(t, err)
		assert.Equal(t, exampleParsedFingerprint, got)
	})

	t.Run("extracts the fingerprint from gpg 1.4 style output", func(t *testing.T) {
		got, err := parseFingerprint(exampleShowKeyOutputGpg14)
		assert.NoError(t, err)
		assert.Equal(t, exampleParsedFingerprint, got)
	})

	t.Run("output without a fingerprint line", func(t *testing.T) {
		_, err := parseFingerprint("gpg: no valid OpenPGP data found.\n")
		if err != ErrNoFingerprintFound {
			t.Fatalf("expected ErrNoFingerprintFound, got '%v'", err)
		}
	})

	t.Run("fingerprint line with truncated hex", func(t *testing.T) {
		_, err := parseFingerprint("      Key fingerprint = AB98 FD9C\n")
		assert.GotError(t, err)
		if err == ErrNoFingerprintFound {
			t.Fatalf("expected a parse error, got ErrNoFingerprintFound")
		}
	})
}

func assert_parses_version_correctly(t *testing.T, gpgOutput string, want string) {
	t.Helper()
	got, err := parseVersionString(gpgOutput)

	if err != nil {
		t.Errorf("Test failed, returned error %s", err)
	}

	if got != want {
		t.Errorf("Test failed, expected '%s', got '%s'", want, got)
	}
}

func assertError(t *testing.T, got error, want error) {
	t.Helper()

	if got == nil {
		t.Fatal("wanted an error but didnt get one")
	}

	if got.Error() != want.Error() {
		t.Errorf("wanted '%s', got '%s'", got, want)
	}
}

var exampleParsedFingerprint = fingerprint.MustParse(
	"AB98 FD9C 260F D9F4 E323  BB8E 1084 E296 1A0D 3FC6")

const exampleShowKeyOutput = `gpg: Total number processed: 1
pub   rsa2048/0x1084E2961A0D3FC6 2018-09-10 [SC]
      Key fingerprint = AB98 FD9C 260F D9F4 E323  BB8E 1084 E296 1A0D 3FC6
uid                      Test Example <test@example.com>
sub   rsa2048/0x627B1B4E8E532C34 2018-09-10 [E]
`

const exampleShowKeyOutputGpg14 = `pub  2048R/1A0D3FC6 2018-09-10
      Key fingerprint = AB98 FD9C 260F D9F4 E323  BB8E 1084 E296 1A0D 3FC6
uid                  Test Example <test@example.com>
sub  2048R/8E532C34 2018-09-10
`
