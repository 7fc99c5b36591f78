// Package lessons assembles the catalog of every lesson in tour order.
package lessons

import (
	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons/accessors"
	"github.com/GoCodeAlone/demokit/lessons/builder"
	"github.com/GoCodeAlone/demokit/lessons/callbacks"
	"github.com/GoCodeAlone/demokit/lessons/cloning"
	"github.com/GoCodeAlone/demokit/lessons/closures"
	"github.com/GoCodeAlone/demokit/lessons/constructors"
	"github.com/GoCodeAlone/demokit/lessons/factoryctor"
	"github.com/GoCodeAlone/demokit/lessons/factorymethod"
	"github.com/GoCodeAlone/demokit/lessons/generics"
	"github.com/GoCodeAlone/demokit/lessons/higherorder"
	"github.com/GoCodeAlone/demokit/lessons/immutable"
	"github.com/GoCodeAlone/demokit/lessons/inheritance"
	"github.com/GoCodeAlone/demokit/lessons/mixins"
	"github.com/GoCodeAlone/demokit/lessons/prototype"
	"github.com/GoCodeAlone/demokit/lessons/recursion"
)

// All returns the lesson factories in tour order.
func All() []demokit.LessonFactory {
	return []demokit.LessonFactory{
		callbacks.New,
		closures.New,
		higherorder.New,
		accessors.New,
		inheritance.New,
		constructors.New,
		factoryctor.New,
		builder.New,
		recursion.New,
		factorymethod.New,
		cloning.New,
		prototype.New,
		mixins.New,
		generics.New,
		immutable.New,
	}
}

// Catalog returns a fresh catalog holding every lesson under its Name.
func Catalog() *demokit.Catalog {
	c := demokit.NewCatalog()
	for _, factory := range All() {
		c.MustRegister(factory().Name(), factory)
	}
	return c
}
