package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kharvol/tms/internal/domain"
	"github.com/kharvol/tms/internal/mapping"
	"github.com/kharvol/tms/internal/message"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/patch"
	"github.com/kharvol/tms/internal/repository"
	"github.com/kharvol/tms/internal/repository/memory"
)

func mustStored(t *testing.T, store *memory.UserInfoStore, id string) *model.UserInfo {
	t.Helper()
	m, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	return m
}

func TestNewID_UniqueAndTimeOrdered(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	first := NewID()
	time.Sleep(5 * time.Millisecond)
	second := NewID()
	require.Less(t, first, second, "ids must sort in generation order")
}

func TestAssignID(t *testing.T) {
	svc, _ := newUserService(t)

	m := &model.UserInfo{}
	svc.assignID(m)
	require.NotEmpty(t, m.ID)

	preset := &model.UserInfo{Envelope: model.Envelope{ID: "external-id"}}
	svc.assignID(preset)
	require.Equal(t, "external-id", preset.ID, "pre-assigned ids are kept")
}

func TestWithIDGenerator(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserInfoStore()
	svc := NewUserInfoService(store, message.Default(),
		WithIDGenerator[domain.UserInfoDTO, *model.UserInfo](func() string { return "fixed-id" }))

	saved, err := svc.Save(ctx, validDTO())
	require.NoError(t, err)
	require.Equal(t, "fixed-id", saved.ID)
}

func TestBase_HookSequence(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserInfoStore()

	var calls []string
	record := func(name string) { calls = append(calls, name) }

	hooks := Hooks[domain.UserInfoDTO, *model.UserInfo]{
		ValidateOnDuplicate: func(context.Context, domain.UserInfoDTO) error {
			record("validateOnDuplicate")
			return nil
		},
		BeforeSave: func(context.Context, *domain.UserInfoDTO, *model.UserInfo) error {
			record("beforeSave")
			return nil
		},
		AfterSave: func(context.Context, *domain.UserInfoDTO, *model.UserInfo) error {
			record("afterSave")
			return nil
		},
		BeforePatch: func(context.Context, patch.Document, *model.UserInfo) error {
			record("beforePatch")
			return nil
		},
		AfterPatch: func(context.Context, patch.Document, *model.UserInfo) error {
			record("afterPatch")
			return nil
		},
		ValidatePatched: func(context.Context, domain.UserInfoDTO) error {
			record("validatePatched")
			return nil
		},
		BeforeDelete: func(context.Context, string) error { record("beforeDelete"); return nil },
		AfterDelete:  func(context.Context, string) error { record("afterDelete"); return nil },
	}
	engine := NewBase(store, mapping.UserInfoMapper{}, nil, mapping.UserInfoClearers(), hooks)

	saved, err := engine.Save(ctx, validDTO())
	require.NoError(t, err)
	require.Equal(t, []string{"validateOnDuplicate", "beforeSave", "afterSave"}, calls)

	calls = nil
	_, err = engine.Patch(ctx, saved.ID, mustParse(t, `{"nickname":"n"}`))
	require.NoError(t, err)
	require.Equal(t, []string{"beforePatch", "afterPatch", "validatePatched"}, calls)

	calls = nil
	require.NoError(t, engine.Delete(ctx, saved.ID))
	require.Equal(t, []string{"beforeDelete", "afterDelete"}, calls)
}

func TestFindPage_ThroughService(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	usernames := []string{"alpha", "bravo", "charlie"}
	for _, name := range usernames {
		d := validDTO()
		d.Username = domain.String(name)
		_, err := svc.Save(ctx, d)
		require.NoError(t, err)
	}

	page, err := svc.FindPage(ctx, repository.Page{Number: 0, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, int64(3), page.TotalElements)
	require.Equal(t, 2, page.TotalPages)

	// ids are time-ordered, so page order follows insertion order
	var got []string
	for _, d := range page.Content {
		got = append(got, *d.Username)
	}
	require.True(t, sort.StringsAreSorted([]string{page.Content[0].ID, page.Content[1].ID}))
	require.Equal(t, []string{"alpha", "bravo"}, got)
}
