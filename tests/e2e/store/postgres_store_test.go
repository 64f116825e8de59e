//go:build e2e

package store_test

import (
	"context"
	"testing"

	"reminder-scheduler/internal/infra/kv"
	"reminder-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PostgresStoreSuite struct {
	e2e.SharedSuite
	store *kv.PostgresStore
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.store = kv.NewPostgresStore(s.DB)
}

func TestPostgresStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) seed(t *testing.T, keys ...kv.Key) {
	t.Helper()
	entries := make([]kv.Entry, len(keys))
	for i, k := range keys {
		entries[i] = kv.Entry{Key: k, Value: []byte(k.String())}
	}
	require.NoError(t, s.store.SetMany(context.Background(), entries))
}

func keysOf(entries []kv.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key.String()
	}
	return out
}

func (s *PostgresStoreSuite) TestGetAndSet() {
	s.Run("Normal case: set, overwrite and get", func() {
		t := s.T()
		ctx := context.Background()
		key := kv.NewKey("a", "1")

		s.seed(t, key)
		require.NoError(t, s.store.SetMany(ctx, []kv.Entry{{Key: key, Value: []byte("second")}}))

		v, ok, err := s.store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "second", string(v))

		_, ok, err = s.store.Get(ctx, kv.NewKey("a", "2"))
		require.NoError(t, err)
		require.False(t, ok)
	})

	s.Run("Error case: an invalid key writes nothing", func() {
		t := s.T()
		ctx := context.Background()

		err := s.store.SetMany(ctx, []kv.Entry{
			{Key: kv.NewKey("a", "ok"), Value: []byte("x")},
			{Key: kv.NewKey("a", "bad\x00part"), Value: []byte("x")},
		})
		require.ErrorIs(t, err, kv.ErrInvalidKey)

		entries, err := s.store.ScanPrefix(ctx, kv.NewKey("a"))
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

func (s *PostgresStoreSuite) TestDeleteMany() {
	t := s.T()
	ctx := context.Background()
	s.seed(t, kv.NewKey("a", "1"), kv.NewKey("a", "2"), kv.NewKey("b", "1"))

	require.NoError(t, s.store.DeleteMany(ctx, []kv.Key{kv.NewKey("a", "1"), kv.NewKey("b", "1"), kv.NewKey("missing")}))
	require.NoError(t, s.store.DeleteMany(ctx, nil))

	entries, err := s.store.ScanPrefix(ctx, kv.NewKey("a"))
	require.NoError(t, err)
	require.Equal(t, []string{"[a, 2]"}, keysOf(entries))
}

func (s *PostgresStoreSuite) TestScans() {
	s.Run("Normal case: prefix scan is tuple-ordered and does not leak into longer parts", func() {
		t := s.T()
		s.seed(t,
			kv.NewKey("t", "2024-01-02T00:00:00.000Z", "b"),
			kv.NewKey("t", "2024-01-01T00:00:00.000Z", "a"),
			kv.NewKey("tt", "x"),
		)

		entries, err := s.store.ScanPrefix(context.Background(), kv.NewKey("t"))
		require.NoError(t, err)

		want := []string{"[t, 2024-01-01T00:00:00.000Z, a]", "[t, 2024-01-02T00:00:00.000Z, b]"}
		if diff := cmp.Diff(want, keysOf(entries)); diff != "" {
			t.Errorf("scan mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: range scan includes everything under the upper bound", func() {
		t := s.T()
		s.seed(t,
			kv.NewKey("t", "2024-01-01T00:00:00.000Z", "a"),
			kv.NewKey("t", "2024-01-02T00:00:00.000Z", "b"),
			kv.NewKey("t", "2024-01-03T00:00:00.000Z", "c"),
		)

		entries, err := s.store.ScanRange(context.Background(), kv.NewKey("t"), kv.NewKey("t", "2024-01-02T00:00:00.000Z"))
		require.NoError(t, err)
		require.Equal(t, []string{"[t, 2024-01-01T00:00:00.000Z, a]", "[t, 2024-01-02T00:00:00.000Z, b]"}, keysOf(entries))
	})
}
