// Command higherorder prints the higherorder lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/higherorder"
)

func main() {
	os.Exit(demokit.Main(higherorder.New()))
}
