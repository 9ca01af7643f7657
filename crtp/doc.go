// Package crtp shows compile-time polymorphism with a runtime handle on top.
//
// Base supplies default behavior. Each variant embeds Base and redefines
// DoSomething; CommonCall is promoted from Base unchanged. Calls made through a
// variant's static type resolve to the variant's method without an interface
// lookup. Holder owns one variant by value and exposes it through HolderBase,
// so the only dynamic dispatch left is the single Run call on the handle.
//
// Redefinition is method shadowing, not overriding: Base's methods never see
// the embedding type, so a call routed through the embedded field reaches the
// default implementation.
//
//	var h crtp.HolderBase = crtp.NewHolder[crtp.PolicyA]()
//	h.Run(os.Stdout) // PolicyA.DoSomething()
//
//	a := crtp.PolicyA{}
//	a.Base.DoSomething(os.Stdout) // Base.DoSomething()
package crtp
