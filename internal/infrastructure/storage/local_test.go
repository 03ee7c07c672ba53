package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
)

func newTestStager(t *testing.T) *LocalStager {
	t.Helper()
	s, err := NewLocalStager(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func TestLocalStager_StageAndResolve(t *testing.T) {
	s := newTestStager(t)
	content := []byte("\x89PNG fake image")

	ref, err := s.Stage(context.Background(), "avatar.png", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatar.png", ref)

	p, ok := s.Path("avatar.png")
	require.True(t, ok)
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalStager_RejectsDisallowedExtensions(t *testing.T) {
	s := newTestStager(t)

	for _, name := range []string{"avatar.exe", "avatar", "avatar.png.sh", "avatar.gif", "日本語.png"} {
		_, err := s.Stage(context.Background(), name, bytes.NewReader([]byte("x")))
		require.Error(t, err, name)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), name)
		assert.ErrorIs(t, err, ErrInvalidFileType)
	}

	entries, err := os.ReadDir(s.Root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStager_ExtensionIsCaseInsensitive(t *testing.T) {
	s := newTestStager(t)

	ref, err := s.Stage(context.Background(), "Face.JPEG", bytes.NewReader([]byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/Face.JPEG", ref)
	assert.NoError(t, s.Validate("x.Jpg"))
}

func TestLocalStager_SanitizesTraversal(t *testing.T) {
	s := newTestStager(t)

	ref, err := s.Stage(context.Background(), "../../outside.png", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/outside.png", ref)

	_, err = os.Stat(filepath.Join(s.Root, "outside.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(s.Root), "outside.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStager_SameNameOverwrites(t *testing.T) {
	s := newTestStager(t)
	ctx := context.Background()

	_, err := s.Stage(ctx, "me.png", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	_, err = s.Stage(ctx, "me.png", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	p, ok := s.Path("me.png")
	require.True(t, ok)
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestLocalStager_PathRejectsUnsafeNames(t *testing.T) {
	s := newTestStager(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(s.Root), "secret.png"), []byte("x"), 0o600))

	for _, name := range []string{"", "../secret.png", "..", "missing.png"} {
		_, ok := s.Path(name)
		assert.False(t, ok, name)
	}
}

func TestLocalStager_WriteFailureIsIOError(t *testing.T) {
	s := newTestStager(t)
	require.NoError(t, os.RemoveAll(s.Root))
	// a regular file where the directory should be makes every create fail
	require.NoError(t, os.WriteFile(s.Root, []byte("x"), 0o600))

	_, err := s.Stage(context.Background(), "a.png", bytes.NewReader([]byte("x")))
	require.Error(t, err)
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}

func TestGCSStager_ValidatesBeforeUploading(t *testing.T) {
	s := NewGCSStager(nil, "", "avatars")

	_, err := s.Stage(context.Background(), "avatar.exe", bytes.NewReader(nil))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.Stage(context.Background(), "avatar.png", bytes.NewReader(nil))
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}
