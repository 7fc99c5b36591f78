// Command prototype prints the prototype lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/prototype"
)

func main() {
	os.Exit(demokit.Main(prototype.New()))
}
