package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventRepo(t *testing.T) *SQLiteEventRepo {
	t.Helper()
	return NewSQLiteEventRepo(testutil.NewTestDB(t))
}

func TestEventRepo_CreateAndGetByStart(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEvent("08:00", testutil.WithTitle("Work"), testutil.WithDuration(4))
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByStart(ctx, "08:00")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, domain.HourKey("08:00"), got.Start)
	assert.Equal(t, "Work", got.Title)
	assert.Equal(t, 4, got.DurationHours)
	assert.True(t, e.CreatedAt.Equal(got.CreatedAt))
}

func TestEventRepo_GetByStart_NotFound(t *testing.T) {
	repo := newEventRepo(t)

	_, err := repo.GetByStart(context.Background(), "07:00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_StartTimeIsUnique(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("08:00")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestEvent("08:00")))
}

func TestEventRepo_ListOrdersByPosition(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("12:00", testutil.WithPosition(1, "b"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("18:00", testutil.WithPosition(2, "c"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("06:00", testutil.WithPosition(0, "a"))))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.HourKey("06:00"), list[0].Start)
	assert.Equal(t, domain.HourKey("12:00"), list[1].Start)
	assert.Equal(t, domain.HourKey("18:00"), list[2].Start)
	assert.Equal(t, "c", list[2].Color)
}

func TestEventRepo_ListEmpty(t *testing.T) {
	list, err := newEventRepo(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEventRepo_Update(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := testutil.NewTestEvent("13:00", testutil.WithTitle("Work"), testutil.WithDuration(4))
	require.NoError(t, repo.Create(ctx, e))

	e.Apply("Meetings", 2, testutil.FixedNow.Add(1))
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByStart(ctx, "13:00")
	require.NoError(t, err)
	assert.Equal(t, "Meetings", got.Title)
	assert.Equal(t, 2, got.DurationHours)
}

func TestEventRepo_Update_Missing(t *testing.T) {
	repo := newEventRepo(t)
	err := repo.Update(context.Background(), testutil.NewTestEvent("13:00"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_UpdatePositions(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	a := testutil.NewTestEvent("06:00")
	b := testutil.NewTestEvent("07:00")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.UpdatePositions(ctx, []EventPosition{
		{ID: a.ID, Position: 1, Color: "#2"},
		{ID: b.ID, Position: 0, Color: "#1"},
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, "#1", list[0].Color)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestEventRepo_Count(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("20:00")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEvent("21:00")))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
