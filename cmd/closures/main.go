// Command closures prints the closures lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/closures"
)

func main() {
	os.Exit(demokit.Main(closures.New()))
}
