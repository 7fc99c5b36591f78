// Command factoryctor prints the factoryctor lesson transcript.
package main

import (
	"os"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/factoryctor"
)

func main() {
	os.Exit(demokit.Main(factoryctor.New()))
}
