// Command builder prints the builder lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/builder"
)

func main() {
	os.Exit(demokit.Main(builder.New()))
}
