package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	AppleImage      = "apple.jpg"
	BlockImage      = "block.jpg"
	BackgroundImage = "background.jpg"

	// xdgDir is the directory looked up under each XDG data dir.
	xdgDir = "functional-snake"
)

var ErrAssetNotFound = errors.New("asset not found")

// Paths holds the resolved file of every sprite.
type Paths struct {
	Apple      string
	Block      string
	Background string
}

// Resolve finds every sprite in dir, falling back to
// $XDG_DATA_DIRS/functional-snake/<base of dir>/ for each missing file.
func Resolve(dir string) (Paths, error) {
	var p Paths
	var err error
	if p.Apple, err = find(dir, AppleImage); err != nil {
		return Paths{}, err
	}
	if p.Block, err = find(dir, BlockImage); err != nil {
		return Paths{}, err
	}
	if p.Background, err = find(dir, BackgroundImage); err != nil {
		return Paths{}, err
	}
	return p, nil
}

func find(dir, name string) (string, error) {
	local := filepath.Join(dir, name)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return local, nil
	}

	path, err := xdg.SearchDataFile(filepath.Join(xdgDir, filepath.Base(dir), name))
	if err != nil {
		return "", fmt.Errorf("%w: %s (looked in %s and XDG data dirs)", ErrAssetNotFound, name, dir)
	}
	return path, nil
}
