package main

import (
	"os"

	"github.com/fluidkeys/gpg/gt"
)

func main() {
	os.Exit(gt.Main())
}
