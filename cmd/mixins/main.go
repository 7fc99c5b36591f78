// Command mixins prints the mixins lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/mixins"
)

func main() {
	os.Exit(demokit.Main(mixins.New()))
}
