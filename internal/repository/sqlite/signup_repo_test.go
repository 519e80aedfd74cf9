package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cloux/internal/domain"
	"cloux/internal/repository/migrations"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) domain.SignupRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "signups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = migrations.Run(ctx, db, migrations.SQLite, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return NewSignupRepository(db)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
}

func TestSignupRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	created := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	want := &domain.Signup{ID: "01JAAAAAAAAAAAAAAAAAAAAAAA", Email: "alice@example.com", CreatedAt: created}
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetByEmail mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.GetByEmail(ctx, "Alice@example.com")
	require.ErrorIs(t, err, domain.ErrSignupNotFound, "lookup is case sensitive")
}

func TestSignupRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &domain.Signup{ID: "01", Email: "dup@example.com", CreatedAt: now}))
	err := repo.Create(ctx, &domain.Signup{ID: "02", Email: "dup@example.com", CreatedAt: now})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSignupRepository_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	ids := []string{"01", "02", "03", "04", "05", "06", "07", "08"}
	errs := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &domain.Signup{ID: id, Email: "race@example.com", CreatedAt: time.Now()})
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	}
	assert.Equal(t, 1, ok)
}

func TestSignupRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	seed := []*domain.Signup{
		{ID: "01", Email: "first@example.com", CreatedAt: base},
		{ID: "02", Email: "second@example.com", CreatedAt: base.Add(time.Minute)},
		{ID: "03", Email: "third@example.com", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "04", Email: "tie@example.com", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, s))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	want := []*domain.Signup{seed[3], seed[2], seed[1], seed[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed), n)
	require.NoError(t, repo.Ping(ctx))
}
