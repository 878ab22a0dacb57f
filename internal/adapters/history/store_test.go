package history_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/history"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestStore_LoadAbsent(t *testing.T) {
	s := history.NewStore(filepath.Join(t.TempDir(), "history.json"), nil)
	assert.Empty(t, s.Load())
	assert.NotNil(t, s.Load())
}

func TestStore_LoadMalformedIsEmptyAndLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	s := history.NewStore(path, log)
	assert.Equal(t, map[string]string{}, s.Load())
}

func TestStore_LoadEmptyFileAndNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := history.NewStore(path, nil)

	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))
	assert.Equal(t, map[string]string{}, s.Load())

	require.NoError(t, os.WriteFile(path, []byte("null"), domain.FilePerm))
	assert.Equal(t, map[string]string{}, s.Load())
}

func TestStore_SetMergesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history.json")
	s := history.NewStore(path, nil)

	require.NoError(t, s.Set("/data/a.sav", domain.Primary))
	require.NoError(t, s.Set("/data/b.sav", domain.Other("/usr/bin/hexedit")))
	require.NoError(t, s.Set("/data/a.sav", domain.Secondary))

	assert.Equal(t, map[string]string{
		"/data/a.sav": "secondary",
		"/data/b.sav": "/usr/bin/hexedit",
	}, s.Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 2)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".history-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_SetRejectsUnknown(t *testing.T) {
	s := history.NewStore(filepath.Join(t.TempDir(), "history.json"), nil)
	require.Error(t, s.Set("/data/a.sav", domain.Unknown))
	assert.Empty(t, s.Load())
}

func TestStore_LegacyTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"/data/a.sav": "pslf", "/data/b.raw": "psse"}`), domain.FilePerm))

	entries := history.NewStore(path, nil).Load()
	assert.Equal(t, domain.Primary, domain.ParseProgram(entries["/data/a.sav"]))
	assert.Equal(t, domain.Secondary, domain.ParseProgram(entries["/data/b.raw"]))
}

func TestStore_SaveIntoUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	s := history.NewStore(filepath.Join(blocker, "history.json"), nil)
	err := s.Save(map[string]string{"/x": "primary"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHistoryWriteFailed.Error())
}

func TestStore_OtherRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, history.NewStore(path, nil).Set("/data/c.sav", domain.Other("notepad.exe")))

	got := domain.ParseProgram(history.NewStore(path, nil).Load()["/data/c.sav"])
	assert.Equal(t, domain.Other("notepad.exe"), got)
}
