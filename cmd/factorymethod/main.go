// Command factorymethod prints the factorymethod lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/factorymethod"
)

func main() {
	os.Exit(demokit.Main(factorymethod.New()))
}
