package pure_test

import (
	"testing"

	"github.com/on-the-ground/policy_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestMemoize(t *testing.T) {
	count := 0
	fn := pure.Memoize(func(i int) int {
		count++
		return i * 2
	}, 2)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestMemoize2(t *testing.T) {
	count := 0
	fn := pure.Memoize2(func(a, b float64) float64 {
		count++
		return a*2 - b
	}, 4)

	assert.Equal(t, 4.0, fn(3, 2))
	assert.Equal(t, 4.0, fn(3, 2))
	assert.Equal(t, 1, count)

	// argument order is part of the key
	assert.Equal(t, 1.0, fn(2, 3))
	assert.Equal(t, 2, count)
}

func TestMemoize_RecomputesAfterEviction(t *testing.T) {
	count := 0
	fn := pure.Memoize(func(i int) int {
		count++
		return i + 1
	}, 1)

	fn(1)
	fn(2) // rotates: 1 in tail
	fn(3) // rotates: 1 dropped
	assert.Equal(t, 3, count)

	assert.Equal(t, 2, fn(1))
	assert.Equal(t, 4, count)
}
