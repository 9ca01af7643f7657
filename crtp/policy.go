package crtp

import (
	"fmt"
	"io"
)

// Policy is the capability set shared by Base and every variant.
type Policy interface {
	DoSomething(w io.Writer)
	CommonCall(w io.Writer)
}

var (
	_ Policy = Base{}
	_ Policy = PolicyA{}
	_ Policy = PolicyB{}
)

// Base provides the default implementations.
type Base struct{}

func (Base) DoSomething(w io.Writer) {
	fmt.Fprintln(w, "Base.DoSomething()")
}

// CommonCall is shared by all variants.
func (Base) CommonCall(w io.Writer) {
	fmt.Fprintln(w, "Base.CommonCall()")
}

type PolicyA struct {
	Base
}

// DoSomething shadows Base.DoSomething.
func (PolicyA) DoSomething(w io.Writer) {
	fmt.Fprintln(w, "PolicyA.DoSomething()")
}

type PolicyB struct {
	Base
}

func (PolicyB) DoSomething(w io.Writer) {
	fmt.Fprintln(w, "PolicyB.DoSomething()")
}

// DoSomething calls p's own DoSomething, resolved by the type argument.
func DoSomething[P Policy](p P, w io.Writer) {
	p.DoSomething(w)
}

func CommonCall[P Policy](p P, w io.Writer) {
	p.CommonCall(w)
}
