// Command generics prints the generics lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/generics"
)

func main() {
	os.Exit(demokit.Main(generics.New()))
}
