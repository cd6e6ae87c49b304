package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSprites(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpg"), 0644))
	}
}

// isolateXDG points the XDG data dirs at an empty temp tree.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "home"))
	t.Setenv("XDG_DATA_DIRS", filepath.Join(root, "dirs"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return root
}

func TestResolveLocalDir(t *testing.T) {
	isolateXDG(t)
	dir := filepath.Join(t.TempDir(), "ressources")
	writeSprites(t, dir, AppleImage, BlockImage, BackgroundImage)

	paths, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, AppleImage), paths.Apple)
	assert.Equal(t, filepath.Join(dir, BlockImage), paths.Block)
	assert.Equal(t, filepath.Join(dir, BackgroundImage), paths.Background)
}

func TestResolveFallsBackToXDG(t *testing.T) {
	root := isolateXDG(t)
	local := filepath.Join(t.TempDir(), "ressources")
	writeSprites(t, local, AppleImage)
	shared := filepath.Join(root, "home", "functional-snake", "ressources")
	writeSprites(t, shared, BlockImage, BackgroundImage)

	paths, err := Resolve(local)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(local, AppleImage), paths.Apple)
	assert.Equal(t, filepath.Join(shared, BlockImage), paths.Block)
	assert.Equal(t, filepath.Join(shared, BackgroundImage), paths.Background)
}

func TestResolveMissing(t *testing.T) {
	isolateXDG(t)
	dir := filepath.Join(t.TempDir(), "ressources")
	writeSprites(t, dir, AppleImage, BlockImage)

	_, err := Resolve(dir)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.Contains(t, err.Error(), BackgroundImage)
}
