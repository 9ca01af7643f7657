package crtp

import (
	"io"

	"go.uber.org/zap"
)

// HolderBase erases the variant type behind a single Run entry point.
type HolderBase interface {
	Run(w io.Writer)
}

var _ HolderBase = (*Holder[PolicyA])(nil)

// Holder owns one P by value.
type Holder[P Policy] struct {
	policy P
}

// NewHolder default-constructs the variant.
func NewHolder[P Policy]() *Holder[P] {
	h := &Holder[P]{}
	zap.L().Sugar().Debugf("created crtp holder: policy: %T", h.policy)
	return h
}

// Run calls DoSomething on the owned value. The static type is P, so the
// variant's redefinition wins.
func (h *Holder[P]) Run(w io.Writer) {
	h.policy.DoSomething(w)
}

func (h *Holder[P]) Common(w io.Writer) {
	h.policy.CommonCall(w)
}

func (h *Holder[P]) Policy() P {
	return h.policy
}
