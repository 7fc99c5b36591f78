// Command callbacks prints the callbacks lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/callbacks"
)

func main() {
	os.Exit(demokit.Main(callbacks.New()))
}
