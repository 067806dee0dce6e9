package fingerprint

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

type fingerprintBytes = [20]byte

// Fingerprint represents a 20-byte OpenPGP v4 fingerprint.
type Fingerprint struct {
	fingerprintBytes

	isSet bool
}

var fingerprintPattern = regexp.MustCompile(`^(?:0x)?([A-Fa-f0-9]{40})$`)

// Parse takes a string and returns a Fingerprint.
// It accepts fingerprints with spaces, mixed case and an optional leading
// `0x`, for example `0xAB01 ab01 AB01 AB01 AB01  AB01 AB01 AB01 AB01 AB01`
func Parse(fp string) (Fingerprint, error) {
	withoutSpaces := strings.Replace(fp, " ", "", -1)

	if withoutSpaces == "" {
		return Fingerprint{}, fmt.Errorf("invalid fingerprint: empty")
	}

	match := fingerprintPattern.FindStringSubmatch(withoutSpaces)
	if match == nil {
		return Fingerprint{}, fmt.Errorf("invalid v4 fingerprint: not 40 hex characters")
	}

	bytes, err := hex.DecodeString(match[1])
	if err != nil {
		return Fingerprint{}, err
	}

	var f Fingerprint
	copy(f.fingerprintBytes[:], bytes)
	f.isSet = true
	return f, nil
}

// MustParse takes a string and returns a Fingerprint. If the string is not a
// valid fingerprint (e.g. 40 hex characters) it will panic.
func MustParse(fp string) Fingerprint {
	result, err := Parse(fp)
	if err != nil {
		panic(err)
	}
	return result
}

// FromBytes takes 20 bytes and returns a Fingerprint, for example from
// the Fingerprint field of an openpgp packet.PublicKey.
func FromBytes(bytes [20]byte) Fingerprint {
	return Fingerprint{
		fingerprintBytes: bytes,
		isSet:            true,
	}
}

// String returns the fingerprint in the "human friendly" format, for example
// `AB01 AB01 AB01 AB01 AB01  AB01 AB01 AB01 AB01 AB01`
func (f Fingerprint) String() string {
	f.assertIsSet()
	b := f.fingerprintBytes

	return fmt.Sprintf(
		"%X %X %X %X %X  %X %X %X %X %X",
		b[0:2], b[2:4], b[4:6], b[6:8], b[8:10],
		b[10:12], b[12:14], b[14:16], b[16:18], b[18:20],
	)
}

// Hex returns the fingerprint as uppercase hex (20 bytes, 40 characters)
// without spaces, for example:
// `AB01AB01AB01AB01AB01AB01AB01AB01AB01AB01`
func (f Fingerprint) Hex() string {
	f.assertIsSet()
	return fmt.Sprintf("%X", f.fingerprintBytes)
}

// Bytes returns the raw 20 bytes of the fingerprint.
func (f Fingerprint) Bytes() [20]byte {
	f.assertIsSet()
	return f.fingerprintBytes
}

// IsSet returns true if the fingerprint was initialised from real data rather
// than being an empty zero value.
func (f Fingerprint) IsSet() bool {
	return f.isSet
}

// MarshalText implements encoding.TextMarshaler, allowing a Fingerprint to be
// used directly with encoding/json and similar packages. It renders the
// fingerprint in Hex() format.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing any format
// accepted by Parse.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Fingerprint) assertIsSet() {
	if !f.IsSet() {
		panic(fmt.Errorf("tried to use a fingerprint that hasn't been set"))
	}
}
