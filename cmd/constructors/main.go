// Command constructors prints the constructors lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/constructors"
)

func main() {
	os.Exit(demokit.Main(constructors.New()))
}
