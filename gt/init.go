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

package gt

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fluidkeys/gpg/config"
	"github.com/fluidkeys/gpg/database"
	"github.com/fluidkeys/gpg/gpgwrapper"
	"github.com/fluidkeys/gpg/keyring"
	"github.com/fluidkeys/gpg/out"
	"github.com/mitchellh/go-homedir"
)

func init() {
	initGpgToolDirectory()
	initOutput()
	initConfig()
	initKeyring()
	initDatabase()
	initGpgWrapper()
}

func initGpgToolDirectory() {
	var err error
	gpgToolDirectory, err = getGpgToolDirectory()
	if err != nil {
		fmt.Printf("Failed to get gpg-tool directory: %v\n", err)
		os.Exit(1)
	}
}

func initOutput() {
	if err := out.Load(gpgToolDirectory); err != nil {
		log.Panic(err)
	}
}

func initConfig() {
	configPointer, err := config.Load(gpgToolDirectory)
	if err != nil {
		fmt.Printf("Failed to open config file: %v\n", err)
		os.Exit(2)
	} else {
		Config = *configPointer
	}
}

func initKeyring() {
	keyringPointer, err := keyring.Load()
	if err != nil {
		fmt.Printf("Failed to load keyring: %v\n", err)
		os.Exit(3)
	} else {
		Keyring = *keyringPointer
	}
}

func initDatabase() {
	db = database.New(gpgToolDirectory)
}

func initGpgWrapper() {
	trustModel, err := gpgwrapper.ParseTrustModel(Config.TrustModel())
	if err != nil {
		fmt.Printf("Bad trust_model in %s: %v\n", Config.GetFilename(), err)
		os.Exit(4)
	}

	gpgPointer, err := gpgwrapper.LoadWithOptions(gpgwrapper.Options{
		PublicKeyringPath: filepath.Join(gpgToolDirectory, "pubring.gpg"),
		SecretKeyringPath: filepath.Join(gpgToolDirectory, "secring.gpg"),
		TrustModel:        trustModel,
		GpgPath:           Config.GpgBinary(),
	})
	if err != nil {
		fmt.Printf("Failed to load GnuPG: %v\n", err)
		os.Exit(4)
	}
	gpg = *gpgPointer
}

func getGpgToolDirectory() (string, error) {
	dirFromEnv := os.Getenv("GPGTOOL_DIR")

	if dirFromEnv != "" {
		return dirFromEnv, nil
	} else {
		return makeGpgToolHomeDirectory()
	}
}

func makeGpgToolHomeDirectory() (string, error) {
	homeDirectory, err := homedir.Dir()

	if err != nil {
		return "", err
	}

	gpgToolDir := filepath.Join(homeDirectory, ".config", "gpg-tool")
	err = os.MkdirAll(gpgToolDir, 0700)
	if err != nil {
		return "", err
	}

	return gpgToolDir, nil
}
