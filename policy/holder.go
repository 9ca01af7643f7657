package policy

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HolderBase is the type-erased view of a Holder. Run is the only dynamic call
// on the hot path.
type HolderBase interface {
	Run(x float64) float64
	// Close releases the holder. Run must not be called afterwards.
	Close()
}

var _ HolderBase = (*Holder[PolicyA])(nil)

// Holder owns one Method[P] by value.
type Holder[P Policy] struct {
	HolderId  string
	method    Method[P]
	createdAt time.Time
	lifetime  TimeSpan
	closeFn   func()
	closed    bool
}

func NewHolder[P Policy](p P, opts ...Option) *Holder[P] {
	o := newOptions(opts)
	h := &Holder[P]{
		HolderId:  uuid.New().String(),
		method:    newMethod(p, o),
		createdAt: time.Now(),
		closeFn:   o.teardown(),
	}
	zap.L().Sugar().Debugf("created policy holder: holderId: %v, policy: %T", h.HolderId, p)
	return h
}

// Run panics with ErrClosedHolder once the holder is closed.
func (h *Holder[P]) Run(x float64) float64 {
	if h.closed {
		panic(fmt.Errorf("%w: %v", ErrClosedHolder, h.HolderId))
	}
	return h.method.Run(x)
}

func (h *Holder[P]) Policy() P {
	return h.method.policy
}

// Close runs the teardown once. Subsequent calls are no-ops.
func (h *Holder[P]) Close() {
	if h.closed {
		return
	}
	h.closeFn()
	h.closed = true
	h.lifetime = newTimeSpan(h.createdAt, time.Now())
	zap.L().Debug("closed policy holder",
		zap.String("holderId", h.HolderId),
		zap.Duration("lifetime", h.lifetime.Duration()),
	)
}

func (h *Holder[P]) Closed() bool {
	return h.closed
}

// Lifetime spans from creation to Close, or to now while the holder is open.
func (h *Holder[P]) Lifetime() TimeSpan {
	if h.closed {
		return h.lifetime
	}
	return newTimeSpan(h.createdAt, time.Now())
}

// Fingerprint identifies the policy type and parameters. Holders built from the
// same policy value share a fingerprint regardless of options.
func (h *Holder[P]) Fingerprint() uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%T%+v", h.method.policy, h.method.policy))
}
