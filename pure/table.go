package pure

// Table is a bounded two-generation lookup table.
//
// It is not safe for concurrent use.
type Table[K comparable, V any] struct {
	gens    [2]map[K]V
	headIdx int
	maxSize uint32
}

func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[K, V]{
		gens:    [2]map[K]V{make(map[K]V, maxSize), make(map[K]V)},
		maxSize: maxSize,
	}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	if v, ok := t.gens[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.gens[1-t.headIdx][key]
	return v, ok
}

func (t *Table[K, V]) Store(key K, value V) {
	head := t.gens[t.headIdx]
	if _, ok := head[key]; !ok && uint32(len(head)) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.gens[t.headIdx] = make(map[K]V, t.maxSize)
	}
	t.gens[t.headIdx][key] = value
}

// Len counts entries across both generations. Keys present in both are counted twice.
func (t *Table[K, V]) Len() int {
	return len(t.gens[0]) + len(t.gens[1])
}
