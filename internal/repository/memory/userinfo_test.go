package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/repository"
)

func TestSave_MaintainsAuditTimestamps(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()

	tick := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { tick = tick.Add(time.Minute); return tick }

	first, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: "a"}, Username: "u"})
	require.NoError(t, err)
	require.False(t, first.CreatedDate.IsZero())
	require.Equal(t, first.CreatedDate, first.ModifiedDate)

	second, err := s.Save(ctx, first)
	require.NoError(t, err)
	require.Equal(t, first.CreatedDate, second.CreatedDate, "created date fixed at first write")
	require.True(t, second.ModifiedDate.After(first.ModifiedDate), "modified date refreshed on every write")
}

func TestFindByID_CopiesOut(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()

	_, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: "a"}, Username: "u", FirstName: "F"})
	require.NoError(t, err)

	got, err := s.FindByID(ctx, "a")
	require.NoError(t, err)
	got.FirstName = "mutated"

	again, err := s.FindByID(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "F", again.FirstName, "callers must not alias stored state")

	_, err = s.FindByID(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFindAll_OrderedByID(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: id}, Username: "u-" + id})
		require.NoError(t, err)
	}

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "a", all[0].ID)
	require.Equal(t, "b", all[1].ID)
	require.Equal(t, "c", all[2].ID)
}

func TestFindPage(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("id-%d", i)
		_, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: id}, Username: "u-" + id})
		require.NoError(t, err)
	}

	page, err := s.FindPage(ctx, repository.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	require.Equal(t, int64(5), page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 2)
	require.Equal(t, "id-2", page.Content[0].ID)

	last, err := s.FindPage(ctx, repository.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, last.Content, 1)

	beyond, err := s.FindPage(ctx, repository.Page{Number: 9, Size: 2})
	require.NoError(t, err)
	require.Empty(t, beyond.Content)

	// a negative page number is treated as the first page
	neg, err := s.FindPage(ctx, repository.Page{Number: -1, Size: 2})
	require.NoError(t, err)
	require.Equal(t, 0, neg.Number)
	require.Len(t, neg.Content, 2)
	require.Equal(t, "id-0", neg.Content[0].ID)
}

func TestDeleteAndExists(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()
	_, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: "a"}, Username: "u"})
	require.NoError(t, err)

	exists, err := s.ExistsByID(ctx, "a")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, s.DeleteByID(ctx, "a"))
	exists, err = s.ExistsByID(ctx, "a")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, s.DeleteByID(ctx, "a"), "deleting an absent id is a no-op")
}

func TestUsernameLookups(t *testing.T) {
	ctx := context.Background()
	s := NewUserInfoStore()
	_, err := s.Save(ctx, &model.UserInfo{Envelope: model.Envelope{ID: "a"}, Username: "vkharyk"})
	require.NoError(t, err)

	got, err := s.FindByUsername(ctx, "vkharyk")
	require.NoError(t, err)
	require.Equal(t, "a", got.ID)

	_, err = s.FindByUsername(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrNotFound)

	taken, err := s.ExistsByUsername(ctx, "vkharyk")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = s.ExistsByUsernameExcludingID(ctx, "vkharyk", "a")
	require.NoError(t, err)
	require.False(t, taken, "own record does not count as a duplicate")

	taken, err = s.ExistsByUsernameExcludingID(ctx, "vkharyk", "b")
	require.NoError(t, err)
	require.True(t, taken)
}
