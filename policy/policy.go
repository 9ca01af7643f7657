package policy

// Policy computes a pure function of x and the policy's own parameters.
type Policy interface {
	Run(x float64) float64
}

var (
	_ Policy = PolicyA{}
	_ Policy = PolicyB{}
)

// PolicyA scales x by A.
type PolicyA struct {
	A float64
}

func NewPolicyA(a float64) PolicyA {
	return PolicyA{A: a}
}

func (p PolicyA) Run(x float64) float64 {
	return x * p.A
}

// PolicyB scales x by A and subtracts B.
type PolicyB struct {
	A float64
	B float64
}

func NewPolicyB(a, b float64) PolicyB {
	return PolicyB{A: a, B: b}
}

func (p PolicyB) Run(x float64) float64 {
	return x*p.A - p.B
}
