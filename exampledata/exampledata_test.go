package exampledata

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fluidkeys/gpg/fingerprint"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

func TestArmoredKeys(t *testing.T) {
	var tests = []struct {
		name                string
		armoredKey          string
		expectedFingerprint fingerprint.Fingerprint
	}{
		{
			`public key 1`,
			ExamplePublicKey1,
			ExampleFingerprint1,
		},
		{
			`private key 1`,
			ExamplePrivateKey1,
			ExampleFingerprint1,
		},
		{
			`public key 2`,
			ExamplePublicKey2,
			ExampleFingerprint2,
		},
		{
			`private key 2`,
			ExamplePrivateKey2,
			ExampleFingerprint2,
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("can load %s", test.name), func(t *testing.T) {
			assertCanLoadKey(t, test.armoredKey)
		})
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s fingerprint", test.name), func(t *testing.T) {
			entity, _ := loadKey(test.armoredKey)
			gotFingerprint := fingerprint.FromBytes(entity.PrimaryKey.Fingerprint)

			if gotFingerprint != test.expectedFingerprint {
				t.Errorf("loaded %s, expected fingerprint '%s', got '%s'", test.name, test.expectedFingerprint, gotFingerprint)
			}
		})
	}
}

func TestEncryptedMessage(t *testing.T) {
	t.Run("encrypted message 1 is an armored PGP message", func(t *testing.T) {
		block, err := armor.Decode(strings.NewReader(ExampleEncryptedMessage1))
		if err != nil {
			t.Fatalf("error decoding armor: %v", err)
		}

		if block.Type != "PGP MESSAGE" {
			t.Errorf("expected armor block type 'PGP MESSAGE', got '%s'", block.Type)
		}
	})
}

func assertCanLoadKey(t *testing.T, armoredKey string) {
	t.Helper()

	_, err := loadKey(armoredKey)
	if err != nil {
		t.Error(err)
	}
}

func loadKey(armoredKey string) (*openpgp.Entity, error) {
	entityList, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredKey))
	if err != nil {
		return nil, fmt.Errorf("error reading armored key: %v", err)
	}
	if len(entityList) != 1 {
		return nil, fmt.Errorf("expected 1 openpgp.Entity, got %d!", len(entityList))
	}
	return entityList[0], nil
}
