package signature_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/engine/signature"
	"go.trai.ch/zerr"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.sav")
	require.NoError(t, os.WriteFile(path, content, domain.FilePerm))
	return path
}

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    domain.Program
	}{
		{
			name:    "sqlite header",
			content: append([]byte("SQLite format 3\x00"), make([]byte, 100)...),
			want:    domain.Primary,
		},
		{
			name:    "version at offset eight",
			content: []byte("\x01\x02\x03\x04\x05\x06\x07\x08Version 21.0 case data follows"),
			want:    domain.Primary,
		},
		{
			name:    "secondary header",
			content: append([]byte("FuP_pHySPCD%"), make([]byte, 64)...),
			want:    domain.Secondary,
		},
		{
			name:    "unrelated content",
			content: []byte("PK\x03\x04 this is a zip archive"),
			want:    domain.Unknown,
		},
		{
			name:    "empty file",
			content: nil,
			want:    domain.Unknown,
		},
		{
			name:    "pattern beyond head is ignored",
			content: append(make([]byte, domain.SignatureHeadLen), []byte("SQLite format")...),
			want:    domain.Unknown,
		},
	}

	checker := signature.NewChecker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.Check(writeFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_Check_Idempotent(t *testing.T) {
	path := writeFile(t, []byte("FuP_pHySPCD% and more"))
	checker := signature.NewChecker()

	for range 3 {
		got, err := checker.Check(path)
		require.NoError(t, err)
		assert.Equal(t, domain.Secondary, got)
	}
}

func TestChecker_Check_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sav")

	got, err := signature.NewChecker().Check(path)
	require.Error(t, err)
	assert.Equal(t, domain.Unknown, got)
	assert.Contains(t, err.Error(), domain.ErrFileUnreadable.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestChecker_CustomTable(t *testing.T) {
	checker := signature.NewCheckerWithTable(domain.SignatureTable{
		{Offset: 2, Pattern: []byte("AB"), Program: domain.Secondary},
		{Offset: 2, Pattern: []byte("AB"), Program: domain.Primary},
	})

	// First match in table order wins.
	assert.Equal(t, domain.Secondary, checker.CheckBytes([]byte("xxAB")))
	assert.Equal(t, domain.Unknown, checker.CheckBytes([]byte("ABxx")))
}
