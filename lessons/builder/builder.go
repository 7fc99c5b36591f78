// Package builder shows the builder pattern: chained configuration on a
// mutable builder, a terminal Build that checks required fields and returns
// an immutable product, and builders that refuse further configuration once
// they have built.
package builder

import (
	"errors"
)

// ErrBuilderSealed is returned by Build when the builder has already built a
// product or was configured after doing so.
var ErrBuilderSealed = errors.New("builder already built its product")

// seal tracks the Configuring to Built transition shared by every builder.
// A failed Build leaves the builder configurable.
type seal struct {
	sealed bool
	err    error
}

// configurable reports whether a configuration call may proceed. A call
// after Build is ignored and remembered as ErrBuilderSealed.
func (s *seal) configurable() bool {
	if s.sealed {
		s.err = ErrBuilderSealed
		return false
	}
	return s.err == nil
}

// fail records the first configuration error.
func (s *seal) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// check returns the recorded error, or ErrBuilderSealed once built.
func (s *seal) check() error {
	if s.sealed {
		return ErrBuilderSealed
	}
	return s.err
}

func (s *seal) done() { s.sealed = true }

// missing returns the names whose set flag is false, in order.
func missing(fields ...field) []string {
	var names []string
	for _, f := range fields {
		if !f.set {
			names = append(names, f.name)
		}
	}
	return names
}

type field struct {
	name string
	set  bool
}
