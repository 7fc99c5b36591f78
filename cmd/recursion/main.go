// Command recursion prints the recursion lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/recursion"
)

func main() {
	os.Exit(demokit.Main(recursion.New()))
}
