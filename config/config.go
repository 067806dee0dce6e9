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

package config

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/fluidkeys/gpg/fingerprint"
	"github.com/natefinch/atomic"
)

// Load attempts to load `config.toml` from inside the given gpgToolDirectory.
// If the file is not present, Load will try to create it and will return an
// error if it can't.
// If the file is present but doesn't parse correctly, it will return an error.
func Load(gpgToolDirectory string) (*Config, error) {
	return load(gpgToolDirectory, &fileFunctionsPassthrough{})
}

func load(gpgToolDirectory string, helper fileFunctionsInterface) (*Config, error) {
	configFilename := path.Join(gpgToolDirectory, "config.toml")

	if _, err := helper.OsStat(configFilename); os.IsNotExist(err) {
		// file does not exist, write out default config file
		err = helper.IoutilWriteFile(configFilename, []byte(defaultConfigFile), 0600)

		if err != nil {
			return nil, fmt.Errorf("%s didn't exist and failed to create it: %v", configFilename, err)
		}
	}

	f, err := helper.OsOpen(configFilename)

	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", configFilename, err)
	}
	config, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", configFilename, err)
	}
	config.filename = configFilename
	return config, nil
}

type Config struct {
	parsedConfig   tomlConfig
	parsedMetadata toml.MetaData

	filename string
}

func (c *Config) GetFilename() string {
	return c.filename
}

// GpgBinary returns the name or path of the gpg binary to run, or an empty
// string meaning `gpg` found in $PATH.
func (c *Config) GpgBinary() string {
	if !c.parsedMetadata.IsDefined("gpg_binary") {
		c.parsedConfig.GpgBinary = ""
		err := c.save()
		if err != nil {
			log.Panic(err)
		}
	}

	return c.parsedConfig.GpgBinary
}

// TrustModel returns the configured trust model as a raw string, leaving it
// to the caller to decide whether gpg accepts it.
func (c *Config) TrustModel() string {
	if !c.parsedMetadata.IsDefined("trust_model") {
		c.parsedConfig.TrustModel = defaultTrustModel
		err := c.save()
		if err != nil {
			log.Panic(err)
		}
	}

	return c.parsedConfig.TrustModel
}

// ShouldStorePassphrase returns whether the given key's passphrase should be
// stored in the system keyring when successfully entered (avoiding future
// passphrase prompts).
// The default is false.
func (c *Config) ShouldStorePassphrase(fingerprint fingerprint.Fingerprint) bool {
	return c.getConfig(fingerprint).StorePassphrase
}

// SetStorePassphrase sets whether the given key's passphrase should be
// stored in the system keyring.
func (c *Config) SetStorePassphrase(fp fingerprint.Fingerprint, value bool) error {
	if c.parsedConfig.PgpKeys == nil { // initialize the map if empty
		c.parsedConfig.PgpKeys = make(map[string]key)
	}

	keyConfig := c.getConfig(fp)
	keyConfig.StorePassphrase = value

	c.parsedConfig.PgpKeys[fp.Hex()] = keyConfig
	return c.save()
}

func (c *Config) save() error {
	if c.filename == "" {
		return fmt.Errorf("can't save, empty config filename")
	}
	configContent := bytes.NewBuffer(nil)
	err := c.serialize(configContent)
	if err != nil {
		return err
	}
	return atomic.WriteFile(c.filename, configContent)
}

// getConfig returns a `key` struct for the given Fingerprint
// If no config is found for the fingerprint, return the default config
func (c *Config) getConfig(fp fingerprint.Fingerprint) key {
	keyConfigs := make(map[fingerprint.Fingerprint]key)

	for configFingerprint, keyConfig := range c.parsedConfig.PgpKeys {
		parsedFingerprint, err := fingerprint.Parse(configFingerprint)
		if err != nil {
			log.Panicf("got invalid openpgp fingerprint: '%s'", configFingerprint)
		}

		keyConfigs[parsedFingerprint] = keyConfig
	}

	if keyConfig, inMap := keyConfigs[fp]; inMap {
		return keyConfig
	} else {
		return defaultKeyConfig()
	}
}

func parse(r io.Reader) (*Config, error) {
	var parsedConfig tomlConfig
	metadata, err := toml.DecodeReader(r, &parsedConfig)

	if err != nil {
		return nil, fmt.Errorf("error in toml.DecodeReader: %v", err)
	}

	// validate fingerprints
	for configFingerprint, _ := range parsedConfig.PgpKeys {
		_, err := fingerprint.Parse(configFingerprint)
		if err != nil {
			return nil, fmt.Errorf("got invalid openpgp fingerprint: '%s'", configFingerprint)
		}
	}

	if len(metadata.Undecoded()) > 0 {
		// found config variables that we don't know how to match to
		// the tomlConfig structure
		return nil, fmt.Errorf("encountered unrecognised config keys: %v", metadata.Undecoded())
	}

	config := Config{
		parsedConfig:   parsedConfig,
		parsedMetadata: metadata,
	}
	return &config, nil
}

func (c *Config) serialize(w io.Writer) error {
	w.Write([]byte(defaultConfigFile))
	encoder := toml.NewEncoder(w)
	return encoder.Encode(c.parsedConfig)
}

func defaultKeyConfig() key {
	return key{
		StorePassphrase: false,
	}
}

type tomlConfig struct {
	GpgBinary  string         `toml:"gpg_binary"`
	TrustModel string         `toml:"trust_model"`
	PgpKeys    map[string]key `toml:"pgpkeys"`
}

type key struct {
	StorePassphrase bool `toml:"store_passphrase"`
}

const defaultTrustModel = "always"

const defaultConfigFile string = `# gpg-tool configuration file
#
# # gpg_binary overrides which gpg binary gets run, e.g. "/usr/local/bin/gpg2"
# # Leave empty to use 'gpg' found in PATH.
#
# gpg_binary = ""
#
# # trust_model tells gpg how to decide whether a key can be encrypted to.
# # One of: pgp, classic, direct, always, auto. Keys imported into gpg-tool's
# # own keyring aren't certified, so encrypting to them needs "always".
#
# trust_model = "always"
#
# [pgpkeys]
#   [pgpkeys."AAAA1111AAAA1111AAAA1111AAAA1111AAAA1111"]
#
#             ^^ keys are referenced by their OpenPGP fingerprint, see:
#                $ gpg --list-secret-keys
#
#     # store_passphrase tells gpg-tool to use the system keychain to store
#     # the passphrase for this key and look for it before prompting.
#     store_passphrase = true
#
# THIS FILE IS OVERWRITTEN BY GPG-TOOL.
# Any comments you add will be lost.

`
