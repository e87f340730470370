package handler

import (
	"context"
	"sync"

	"github.com/avioline/seat-reservation/internal/model"
	"github.com/avioline/seat-reservation/internal/repository"
)

// fakeStore is an in-memory booking.Store for handler tests.  It honors
// the repository sentinel contract, including the unique seat
// constraint on insert.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint64
	items  []model.Reservation
}

func newFakeStore(seed ...model.Reservation) *fakeStore {
	s := &fakeStore{}
	for _, r := range seed {
		s.nextID++
		r.ID = s.nextID
		s.items = append(s.items, r)
	}
	return s
}

func (s *fakeStore) ListAll(ctx context.Context) ([]model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reservation, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *fakeStore) FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.SeatRow == row && r.SeatCol == col {
			cp := r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) FindByTicket(ctx context.Context, ticket string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.ETicket == ticket {
			cp := r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) Insert(ctx context.Context, res *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.SeatRow == res.SeatRow && r.SeatCol == res.SeatCol {
			return repository.ErrSeatTaken
		}
	}
	s.nextID++
	res.ID = s.nextID
	s.items = append(s.items, *res)
	return nil
}

func (s *fakeStore) DeleteByID(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.items {
		if r.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeAdminDir is an in-memory AdminDirectory.
type fakeAdminDir struct {
	admins map[string]model.Admin
}

func (d *fakeAdminDir) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if a, ok := d.admins[username]; ok {
		cp := a
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}
