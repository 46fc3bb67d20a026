package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/internal/adapters/store"
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/engine/evaluator"
)

func snapshotFor(t *testing.T, mode domain.BuildMode) domain.PlanSnapshot {
	t.Helper()
	plan, err := evaluator.Evaluate(mode)
	require.NoError(t, err)
	fp, err := domain.Fingerprint(plan)
	require.NoError(t, err)
	return domain.PlanSnapshot{Mode: mode, Fingerprint: fp, Plan: plan}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()

	want := snapshotFor(t, domain.ModeProduction)
	require.NoError(t, s.Put(root, want))

	got, err := s.Get(root, domain.ModeProduction)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Mode, got.Mode)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
	assert.Equal(t, want.Plan.PluginIDs(), got.Plan.PluginIDs())

	_, err = os.Stat(filepath.Join(root, ".assemble", "plans", "production.json"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, ".assemble", "plans"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_RoundTripKeepsFingerprint(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()

	want := snapshotFor(t, domain.ModeDevelopment)
	require.NoError(t, s.Put(root, want))

	got, err := s.Get(root, domain.ModeDevelopment)
	require.NoError(t, err)

	fp, err := domain.Fingerprint(got.Plan)
	require.NoError(t, err)
	assert.Equal(t, want.Fingerprint, fp)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := store.NewStore().Get(t.TempDir(), domain.ModeDevelopment)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := filepath.Join(root, domain.DefaultPlanStorePath())
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "production.json"), []byte("{ invalid json"), domain.PrivateFilePerm))

	_, err := store.NewStore().Get(root, domain.ModeProduction)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutInvalidMode(t *testing.T) {
	t.Parallel()

	err := store.NewStore().Put(t.TempDir(), domain.PlanSnapshot{Mode: "staging"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}
