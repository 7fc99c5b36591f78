// Command cloning prints the cloning lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/cloning"
)

func main() {
	os.Exit(demokit.Main(cloning.New()))
}
