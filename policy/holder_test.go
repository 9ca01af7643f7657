package policy_test

import (
	"testing"

	"github.com/on-the-ground/policy_ive_go/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHolder_CloseRunsTeardownOnce(t *testing.T) {
	torn := 0
	h := policy.NewHolder(policy.NewPolicyA(2), policy.WithTeardown(func() { torn++ }))

	assert.False(t, h.Closed())
	h.Close()
	h.Close()

	assert.True(t, h.Closed())
	assert.Equal(t, 1, torn)
}

func TestHolder_TeardownsRunInReverseOrder(t *testing.T) {
	var order []string
	h := policy.NewHolder(policy.NewPolicyA(1),
		policy.WithTeardown(func() { order = append(order, "first") }),
		policy.WithTeardown(func() { order = append(order, "second") }),
	)
	h.Close()
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestHolder_RunAfterClosePanics(t *testing.T) {
	h := policy.NewHolder(policy.NewPolicyA(2))
	h.Close()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, policy.ErrClosedHolder)
	}()
	h.Run(1)
}

func TestHolder_Identity(t *testing.T) {
	h1 := policy.NewHolder(policy.NewPolicyB(1, 2))
	h2 := policy.NewHolder(policy.NewPolicyB(1, 2), policy.WithMemo(4))
	h3 := policy.NewHolder(policy.NewPolicyB(2, 1))
	a := policy.NewHolder(policy.PolicyA{A: 1})

	assert.NotEmpty(t, h1.HolderId)
	assert.NotEqual(t, h1.HolderId, h2.HolderId)

	assert.Equal(t, h1.Fingerprint(), h2.Fingerprint())
	assert.NotEqual(t, h1.Fingerprint(), h3.Fingerprint())
	assert.NotEqual(t, h1.Fingerprint(), a.Fingerprint())
}

func TestHolder_Lifetime(t *testing.T) {
	h := policy.NewHolder(policy.NewPolicyA(1))
	open := h.Lifetime()
	assert.False(t, open.End().Before(open.Start()))

	h.Close()
	closed := h.Lifetime()
	assert.Equal(t, closed, h.Lifetime())
	assert.False(t, closed.Start().After(closed.End()))
}

func TestHolder_LogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	h := policy.NewHolder(policy.NewPolicyA(1))
	h.Close()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "created policy holder")
	assert.Contains(t, entries[0].Message, h.HolderId)
	assert.Equal(t, "closed policy holder", entries[1].Message)
	assert.Equal(t, h.HolderId, entries[1].ContextMap()["holderId"])
}

func TestHolderAs(t *testing.T) {
	var erased policy.HolderBase = policy.NewHolder(policy.NewPolicyB(1, 2))

	b, err := policy.HolderAs[policy.PolicyB](erased)
	require.NoError(t, err)
	assert.Equal(t, policy.PolicyB{A: 1, B: 2}, b.Policy())

	_, err = policy.HolderAs[policy.PolicyA](erased)
	assert.ErrorIs(t, err, policy.ErrHolderType)

	assert.Panics(t, func() {
		policy.MustHolderAs[policy.PolicyA](erased)
	})
	assert.NotPanics(t, func() {
		policy.MustHolderAs[policy.PolicyB](erased)
	})
}
