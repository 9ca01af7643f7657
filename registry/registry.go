// Package registry selects a policy by name at run time.
//
// The generic factories in package policy check constructor arity at compile
// time. When the policy and its parameters come from configuration that check
// moves here: Fixed1 and Fixed2 reject parameter lists of the wrong length with
// ErrArity before any policy is constructed.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/on-the-ground/policy_ive_go/policy"
	"go.uber.org/zap"
)

var (
	ErrUnknownPolicy   = errors.New("unknown policy")
	ErrDuplicatePolicy = errors.New("policy already registered")
	ErrArity           = errors.New("wrong number of policy parameters")
)

// Factory builds an erased holder from configuration parameters.
type Factory func(params []float64, opts ...policy.Option) (policy.HolderBase, error)

// Fixed1 adapts a one-argument policy constructor.
func Fixed1[P policy.Policy](ctor func(float64) P) Factory {
	return func(params []float64, opts ...policy.Option) (policy.HolderBase, error) {
		if err := checkArity(params, 1); err != nil {
			return nil, err
		}
		return policy.CreateHolder1(ctor, params[0], opts...), nil
	}
}

// Fixed2 adapts a two-argument policy constructor.
func Fixed2[P policy.Policy](ctor func(float64, float64) P) Factory {
	return func(params []float64, opts ...policy.Option) (policy.HolderBase, error) {
		if err := checkArity(params, 2); err != nil {
			return nil, err
		}
		return policy.CreateHolder2(ctor, params[0], params[1], opts...), nil
	}
}

func checkArity(params []float64, want int) error {
	if len(params) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, want, len(params))
	}
	return nil
}

type Registry struct {
	factories map[string]Factory
}

func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry with the built-in policies: "a" (PolicyA) and "b" (PolicyB).
func Default() *Registry {
	r := New()
	r.MustRegister("a", Fixed1(policy.NewPolicyA))
	r.MustRegister("b", Fixed2(policy.NewPolicyB))
	return r
}

func (r *Registry) Register(name string, factory Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePolicy, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is the panic-on-failure variant of Register.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Create builds a holder for the named policy.
func (r *Registry) Create(name string, params []float64, opts ...policy.Option) (policy.HolderBase, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
	h, err := factory(params, opts...)
	if err != nil {
		return nil, fmt.Errorf("policy %s: %w", name, err)
	}
	zap.L().Sugar().Debugf("registry created holder: policy: %v, params: %v", name, params)
	return h, nil
}

// Names returns the registered policy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
