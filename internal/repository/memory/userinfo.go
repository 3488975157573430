// Package memory implements repositories backed by process memory,
// used by tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/repository"
)

// UserInfoStore keeps user records in a mutex-guarded map. Records are
// copied on the way in and out so callers never alias stored state.
type UserInfoStore struct {
	mu   sync.RWMutex
	rows map[string]model.UserInfo
	now  func() time.Time
}

var _ repository.UserInfoRepository = (*UserInfoStore)(nil)

// NewUserInfoStore returns an empty in-memory user store.
func NewUserInfoStore() *UserInfoStore {
	return &UserInfoStore{rows: make(map[string]model.UserInfo), now: time.Now}
}

// Save inserts or replaces a record, maintaining the audit timestamps:
// CreatedDate is fixed at first write, ModifiedDate refreshed every write.
func (s *UserInfoStore) Save(_ context.Context, m *model.UserInfo) (*model.UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *m
	now := s.now().UTC()
	if prev, ok := s.rows[row.ID]; ok {
		row.CreatedBy = prev.CreatedBy
		row.CreatedDate = prev.CreatedDate
	} else {
		row.CreatedDate = now
	}
	row.ModifiedDate = now
	s.rows[row.ID] = row

	saved := row
	return &saved, nil
}

// FindByID returns a copy of the record or errs.ErrNotFound.
func (s *UserInfoStore) FindByID(_ context.Context, id string) (*model.UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := row
	return &c, nil
}

// FindAll returns copies of all records ordered by id.
func (s *UserInfoStore) FindAll(_ context.Context) ([]*model.UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(), nil
}

// FindPage returns one id-ordered page.
func (s *UserInfoStore) FindPage(_ context.Context, page repository.Page) (repository.PageResult[*model.UserInfo], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sortedLocked()
	total := len(all)
	number := page.Number
	if number < 0 {
		number = 0
	}
	size := page.Size
	if size <= 0 {
		size = total
	}

	start := number * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return repository.PageResult[*model.UserInfo]{
		Content:       all[start:end],
		Number:        number,
		Size:          size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
	}, nil
}

// DeleteByID removes a record; deleting an absent id is a no-op.
func (s *UserInfoStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

// ExistsByID reports whether a record with the id is stored.
func (s *UserInfoStore) ExistsByID(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[id]
	return ok, nil
}

// FindByUsername returns a copy of the record holding the username.
func (s *UserInfoStore) FindByUsername(_ context.Context, username string) (*model.UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if row.Username == username {
			c := row
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

// ExistsByUsername reports whether any record holds the username.
func (s *UserInfoStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if row.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByUsernameExcludingID reports whether a record other than id holds the username.
func (s *UserInfoStore) ExistsByUsernameExcludingID(_ context.Context, username, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if row.Username == username && row.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserInfoStore) sortedLocked() []*model.UserInfo {
	out := make([]*model.UserInfo, 0, len(s.rows))
	for _, row := range s.rows {
		c := row
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
