// Command inheritance prints the inheritance lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/inheritance"
)

func main() {
	os.Exit(demokit.Main(inheritance.New()))
}
