// Package policy separates the choice of an algorithm from the cost of calling it.
//
// The choice of Policy happens once, at run time, when a holder is created.
// After that every call below the HolderBase interface is statically typed:
//
//	HolderBase.Run (dynamic) -> Holder[P].Run -> Method[P].Run -> P.Run
//
// Holder and Method own their inner layer by value, so the compiler can
// devirtualize and inline the whole chain for each instantiation. Only the
// outermost hop through HolderBase is an interface call.
//
// Policies take different constructor arguments. The arity-specific factories
// forward them without a per-policy layer, and a mismatch in count or type is a
// compile error:
//
//	h := policy.CreateHolder1(policy.NewPolicyA, 0.0)
//	h.Run(5) // 0
//
//	h = policy.CreateHolder2(policy.NewPolicyB, 1.0, 2.0)
//	h.Run(5) // 3
//
// Method is a pass-through today apart from optional memoization (WithMemo).
// It is the place for behavior that should not live in the policies.
//
// Holders and handles are not safe for concurrent use.
package policy
