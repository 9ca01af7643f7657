package pure

func Memoize[I comparable, O any](
	pureFn func(I) O,
	maxTableSize uint32,
) func(I) O {
	memo := NewTable[I, O](maxTableSize)
	return func(i I) O {
		v, ok := memo.Load(i)
		if !ok {
			v = pureFn(i)
			memo.Store(i, v)
		}
		return v
	}
}

type pair[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

func Memoize2[I1, I2 comparable, O any](
	pureFn func(I1, I2) O,
	maxTableSize uint32,
) func(I1, I2) O {
	memoized := Memoize(func(p pair[I1, I2]) O {
		return pureFn(p.i1, p.i2)
	}, maxTableSize)
	return func(i1 I1, i2 I2) O {
		return memoized(pair[I1, I2]{i1: i1, i2: i2})
	}
}
