package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/infra"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps bookings in process memory. Units of work run one at a time,
// so a check-and-insert inside Within is atomic; Insert re-checks overlap on
// its own as well. A failed unit of work leaves the store as it found it.
type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	bookings map[uuid.UUID]*booking.Booking
}

func NewStore() *Store {
	return &Store{bookings: make(map[uuid.UUID]*booking.Booking)}
}

var (
	_ shared.UnitOfWork   = (*Store)(nil)
	_ shared.BookingStore = (*bookingStore)(nil)
)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	saved := maps.Clone(s.bookings)
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.mu.Lock()
		s.bookings = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Bookings() shared.BookingStore {
	return &bookingStore{store: s}
}

type memTx struct {
	store *Store
}

func (t *memTx) Bookings() shared.BookingStore {
	return &bookingStore{store: t.store}
}

// LockSlot is satisfied by Within holding the store-wide lock.
func (t *memTx) LockSlot(ctx context.Context, _ uuid.UUID, _ interval.Date) error {
	return ctx.Err()
}

type bookingStore struct {
	store *Store
}

func (b *bookingStore) FindByResourceAndDate(_ context.Context, resourceID uuid.UUID, date interval.Date) ([]*booking.Booking, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, bk := range b.store.bookings {
		if bk.ResourceID() == resourceID && bk.Interval().Date().Equal(date) {
			out = append(out, bk)
		}
	}
	slices.SortFunc(out, func(x, y *booking.Booking) int {
		if d := int(x.Interval().Start()) - int(y.Interval().Start()); d != 0 {
			return d
		}
		return x.CreatedAt().Compare(y.CreatedAt())
	})
	return out, nil
}

func (b *bookingStore) Insert(_ context.Context, bk *booking.Booking) (*booking.Booking, error) {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if _, exists := b.store.bookings[bk.ID()]; exists {
		return nil, infra.WrapRepoErr("booking id already exists", nil, infra.KindDuplicateKey)
	}
	if bk.Occupies() {
		for _, other := range b.store.bookings {
			if other.ResourceID() == bk.ResourceID() && other.Occupies() && interval.Overlaps(other.Interval(), bk.Interval()) {
				return nil, infra.WrapRepoErr("booking overlaps an existing booking", nil, infra.KindConflict)
			}
		}
	}

	b.store.bookings[bk.ID()] = bk
	return bk, nil
}

func (b *bookingStore) UpdateStatus(_ context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error) {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	current, ok := b.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if current.Status() != from {
		return nil, infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}

	updated := current.WithStatus(to, at)
	b.store.bookings[id] = updated
	return updated, nil
}

func (b *bookingStore) Get(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	bk, ok := b.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return bk, nil
}

func (b *bookingStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return b.Get(ctx, id)
}
