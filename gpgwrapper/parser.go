package gpgwrapper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fluidkeys/gpg/fingerprint"
)

var ErrNoVersionStringFound = errors.New("version string not found in GPG output")
var ErrNoFingerprintFound = errors.New("key fingerprint not found in GPG output")

// VersionRegexp matches the term "x.x.x" in which x is an integer
var VersionRegexp = regexp.MustCompile(`gpg \(GnuPG.*\) (\d+\.\d+\.\d+)`)

// FingerprintRegexp matches the "Key fingerprint =" line gpg prints when
// showing a key, e.g.
// `      Key fingerprint = 3138 9E60 4FA7 B54C 30D1  3DBD 5A31 E296 A33B D977`
var FingerprintRegexp = regexp.MustCompile(`(?m)^\s*Key fingerprint = ([0-9A-F ]+)`)

func parseVersionString(gpgStdout string) (string, error) {
	match := VersionRegexp.FindStringSubmatch(gpgStdout)

	if match == nil {
		return "", ErrNoVersionStringFound
	}

	return match[1], nil
}

// parseVersionParts breaks a version like "2.1.18" into its numeric major,
// minor and patch parts.
func parseVersionParts(version string) (major int, minor int, patch int, err error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected a version like '2.1.18', got '%s'", version)
	}

	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing major version '%s': %v", parts[0], err)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing minor version '%s': %v", parts[1], err)
	}
	if patch, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("error parsing patch version '%s': %v", parts[2], err)
	}
	return major, minor, patch, nil
}

// parseFingerprint finds the first `Key fingerprint = ...` line in gpg's
// output and returns the fingerprint it carries. Returns
// ErrNoFingerprintFound if no such line is present.
func parseFingerprint(gpgOutput string) (fingerprint.Fingerprint, error) {
	match := FingerprintRegexp.FindStringSubmatch(gpgOutput)

	if match == nil {
		return fingerprint.Fingerprint{}, ErrNoFingerprintFound
	}

	parsed, err := fingerprint.Parse(match[1])
	if err != nil {
		return fingerprint.Fingerprint{}, fmt.Errorf(
			"found fingerprint line but failed to parse '%s': %v", match[1], err)
	}

	return parsed, nil
}
