// Command accessors prints the accessors lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/accessors"
)

func main() {
	os.Exit(demokit.Main(accessors.New()))
}
