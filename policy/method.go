package policy

import (
	"math"

	"github.com/on-the-ground/policy_ive_go/pure"
)

// Method owns one P by value and forwards Run to it.
type Method[P Policy] struct {
	policy P
	memo   func(float64) float64
}

func NewMethod[P Policy](p P, opts ...Option) Method[P] {
	return newMethod(p, newOptions(opts))
}

// NewMethod1 builds the policy from a one-argument constructor.
func NewMethod1[P Policy, A1 any](ctor func(A1) P, a1 A1, opts ...Option) Method[P] {
	return NewMethod(ctor(a1), opts...)
}

// NewMethod2 builds the policy from a two-argument constructor.
func NewMethod2[P Policy, A1, A2 any](ctor func(A1, A2) P, a1 A1, a2 A2, opts ...Option) Method[P] {
	return NewMethod(ctor(a1, a2), opts...)
}

func newMethod[P Policy](p P, o options) Method[P] {
	m := Method[P]{policy: p}
	if o.memoSize > 0 {
		// keyed by bit pattern: +0 and -0 are distinct inputs, NaN hits the table
		memo := pure.Memoize(func(bits uint64) float64 {
			return p.Run(math.Float64frombits(bits))
		}, o.memoSize)
		m.memo = func(x float64) float64 {
			return memo(math.Float64bits(x))
		}
	}
	return m
}

func (m Method[P]) Run(x float64) float64 {
	if m.memo != nil {
		return m.memo(x)
	}
	return m.policy.Run(x)
}

func (m Method[P]) Policy() P {
	return m.policy
}
