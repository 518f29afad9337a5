package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// memo is a write-once cell. Writing it twice or reading it before the write is a
// caller-ordering bug and panics with errors.ErrProtocol.
type memo[T any] struct {
	name  string
	value T
	set   bool
}

func (m *memo[T]) store(v T) {
	if m.set {
		panic(fmt.Errorf("%s computed twice: %w", m.name, errors.ErrProtocol))
	}
	m.value = v
	m.set = true
}

func (m *memo[T]) load() T {
	if !m.set {
		panic(fmt.Errorf("%s read before it was computed: %w", m.name, errors.ErrProtocol))
	}
	return m.value
}
