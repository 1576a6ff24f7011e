package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/binder/pkg/types"
	"github.com/mesh-intelligence/binder/pkg/variant"
)

func attachedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(filepath.Join(t.TempDir(), "nested", "binder.db")))
	t.Cleanup(func() { s.Detach() })

	ctx := context.Background()
	_, err := s.Exec(ctx, `CREATE TABLE readings (name TEXT, level INTEGER, ratio REAL, ok BOOLEAN)`)
	require.NoError(t, err)
	return s
}

func TestStore_Lifecycle(t *testing.T) {
	s := NewStore()
	_, err := s.Exec(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrDetached)

	path := filepath.Join(t.TempDir(), "db", "binder.db")
	require.NoError(t, s.Attach(path))
	assert.Equal(t, path, s.Path())
	assert.ErrorIs(t, s.Attach(path), ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "detach is idempotent")
	_, err = s.Query(context.Background(), nil, "SELECT 1")
	assert.ErrorIs(t, err, ErrDetached)
}

func TestStore_InMemory(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Attach(":memory:"))
	defer s.Detach()

	ctx := context.Background()
	_, err := s.Exec(ctx, "CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)
	n, err := s.Exec(ctx, "INSERT INTO t VALUES (1), (2)")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStore_QueryScansThroughVariants(t *testing.T) {
	s := attachedStore(t)
	ctx := context.Background()

	name, level, ratio, ok := "alpha", uint8(200), 0.75, true
	n, err := s.Exec(ctx, "INSERT INTO readings VALUES (?, ?, ?, ?)",
		variant.Bind(&name), variant.Bind(&level), variant.Bind(&ratio), variant.Bind(&ok))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = s.Exec(ctx, "INSERT INTO readings VALUES ('beta', 7, 1.5, 0)")
	require.NoError(t, err)

	kinds := []types.Kind{types.KindText, types.KindUint8, types.KindDouble, types.KindBool}
	res, err := s.Query(ctx, kinds, "SELECT name, level, ratio, ok FROM readings ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "level", "ratio", "ok"}, res.Columns)
	require.Len(t, res.Rows, 2)

	texts := func(row []variant.Variant) []string {
		out := make([]string, len(row))
		for i, v := range row {
			out[i] = v.String()
		}
		return out
	}
	assert.Equal(t, []string{"alpha", "200", "0.75", "true"}, texts(res.Rows[0]))
	assert.Equal(t, []string{"beta", "7", "1.5", "false"}, texts(res.Rows[1]))

	for i, k := range kinds {
		assert.Equal(t, k, res.Rows[0][i].Kind())
	}
	assert.Equal(t, 8, res.Arena.Len())

	require.NoError(t, res.Free())
	assert.Equal(t, 0, res.Arena.Len())
	assert.ErrorIs(t, res.Rows[0][0].Err(), types.ErrStale)
}

func TestStore_QueryErrors(t *testing.T) {
	s := attachedStore(t)
	ctx := context.Background()
	_, err := s.Exec(ctx, "INSERT INTO readings VALUES ('gamma', 300, 0, 1)")
	require.NoError(t, err)

	_, err = s.Query(ctx, []types.Kind{types.KindText}, "SELECT name, level FROM readings")
	assert.ErrorIs(t, err, ErrColumnCount)

	_, err = s.Query(ctx, []types.Kind{types.KindUint8}, "SELECT level FROM readings")
	assert.ErrorIs(t, err, types.ErrOverflow)

	_, err = s.Query(ctx, []types.Kind{types.KindInt64}, "SELECT name FROM readings")
	assert.ErrorIs(t, err, types.ErrInvalidValue)

	_, err = s.Query(ctx, []types.Kind{types.KindNone}, "SELECT name FROM readings")
	assert.ErrorIs(t, err, types.ErrInvalidKind)
}
