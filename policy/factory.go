package policy

// CreateHolder wraps p in a Holder and returns it behind HolderBase.
func CreateHolder[P Policy](p P, opts ...Option) HolderBase {
	return NewHolder(p, opts...)
}

// CreateHolder1 constructs the policy from one argument.
//
//	policy.CreateHolder1(policy.NewPolicyA, 0.5)
func CreateHolder1[P Policy, A1 any](ctor func(A1) P, a1 A1, opts ...Option) HolderBase {
	return NewHolder(ctor(a1), opts...)
}

// CreateHolder2 constructs the policy from two arguments.
//
//	policy.CreateHolder2(policy.NewPolicyB, 1.0, 2.0)
func CreateHolder2[P Policy, A1, A2 any](ctor func(A1, A2) P, a1 A1, a2 A2, opts ...Option) HolderBase {
	return NewHolder(ctor(a1, a2), opts...)
}
