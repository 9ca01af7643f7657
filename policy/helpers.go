package policy

import "fmt"

// HolderAs recovers the concrete holder behind h.
// Returns ErrHolderType if h does not hold a P.
func HolderAs[P Policy](h HolderBase) (*Holder[P], error) {
	holder, ok := h.(*Holder[P])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrHolderType, h)
	}
	return holder, nil
}

// MustHolderAs is the panic-on-failure variant of HolderAs.
func MustHolderAs[P Policy](h HolderBase) *Holder[P] {
	holder, err := HolderAs[P](h)
	if err != nil {
		panic(err)
	}
	return holder
}
