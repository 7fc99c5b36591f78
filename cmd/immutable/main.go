// Command immutable prints the immutable lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/immutable"
)

func main() {
	os.Exit(demokit.Main(immutable.New()))
}
