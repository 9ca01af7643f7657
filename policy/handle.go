package policy

import "reflect"

// Handle exclusively owns at most one holder.
type Handle struct {
	holder HolderBase
}

func NewHandle(h HolderBase) *Handle {
	return &Handle{holder: h}
}

// Reset closes the current holder and then takes ownership of next.
// The previous holder is released before next is reachable through the handle.
// A nil next leaves the handle empty.
func (h *Handle) Reset(next HolderBase) {
	if sameHolder(h.holder, next) {
		return
	}
	if h.holder != nil {
		h.holder.Close()
	}
	h.holder = next
}

// Run panics with ErrEmptyHandle when no holder is owned.
func (h *Handle) Run(x float64) float64 {
	if h.holder == nil {
		panic(ErrEmptyHandle)
	}
	return h.holder.Run(x)
}

func (h *Handle) Holder() HolderBase {
	return h.holder
}

func (h *Handle) Empty() bool {
	return h.holder == nil
}

func (h *Handle) Close() {
	h.Reset(nil)
}

// sameHolder reports whether a and b are the same holder. Holders whose
// dynamic type is not comparable are never considered the same.
func sameHolder(a, b HolderBase) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
