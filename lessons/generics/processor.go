package generics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/GoCodeAlone/demokit"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataProcessor decodes raw JSON into a value chosen by an explicit tag.
// Each tag is bound to one decoder; callers ask for the tag and the type.
type DataProcessor struct {
	mu       sync.RWMutex
	decoders map[string]func([]byte) (any, error)
}

func NewDataProcessor() *DataProcessor {
	return &DataProcessor{decoders: make(map[string]func([]byte) (any, error))}
}

// RegisterKind binds tag to T, decoding with validate applied afterwards.
// validate may be nil.
func RegisterKind[T any](p *DataProcessor, tag string, validate func(T) error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.decoders[tag] = func(raw []byte) (any, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

// Process decodes raw as the kind registered under tag. An unknown tag, or
// a tag bound to a type other than T, is an unsupported type.
func Process[T any](p *DataProcessor, tag string, raw []byte) (T, error) {
	var zero T

	p.mu.RLock()
	decode, ok := p.decoders[tag]
	p.mu.RUnlock()
	if !ok {
		return zero, demokit.UnsupportedType("data kind", tag)
	}

	v, err := decode(raw)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, demokit.UnsupportedType("data kind", fmt.Sprintf("%s as %T", tag, zero))
	}
	return typed, nil
}

func (p *DataProcessor) Kinds() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	kinds := make([]string, 0, len(p.decoders))
	for k := range p.decoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Status is the tag of a StatusManager state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// StatusManager tracks a load operation for data of type T. The current
// state is an explicit tag plus the data or error that goes with it.
type StatusManager[T any] struct {
	status  Status
	data    T
	err     error
	history []Status
}

func NewStatusManager[T any]() *StatusManager[T] {
	return &StatusManager[T]{status: StatusIdle, history: []Status{StatusIdle}}
}

func (m *StatusManager[T]) Status() Status { return m.status }

func (m *StatusManager[T]) History() []Status { return append([]Status(nil), m.history...) }

func (m *StatusManager[T]) Start() error {
	if m.status == StatusLoading {
		return demokit.NewValidationError("status", string(m.status), "already loading")
	}
	m.set(StatusLoading)
	return nil
}

// Succeed and Fail are only valid while loading.
func (m *StatusManager[T]) Succeed(data T) error {
	if m.status != StatusLoading {
		return demokit.NewValidationError("status", string(m.status), "not loading")
	}
	m.data, m.err = data, nil
	m.set(StatusSuccess)
	return nil
}

func (m *StatusManager[T]) Fail(err error) error {
	if m.status != StatusLoading {
		return demokit.NewValidationError("status", string(m.status), "not loading")
	}
	var zero T
	m.data, m.err = zero, err
	m.set(StatusFailure)
	return nil
}

func (m *StatusManager[T]) set(s Status) {
	m.status = s
	m.history = append(m.history, s)
}

// Describe dispatches on the tag.
func (m *StatusManager[T]) Describe() string {
	switch m.status {
	case StatusLoading:
		return "loading..."
	case StatusSuccess:
		return fmt.Sprintf("loaded %v", m.data)
	case StatusFailure:
		return fmt.Sprintf("failed: %v", m.err)
	default:
		return "idle"
	}
}
