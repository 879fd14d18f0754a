package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"biomegen/internal/biome"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// ErrCorruptArchive reports an archive whose contents do not describe a grid.
var ErrCorruptArchive = errors.New("export: corrupt archive")

// Archive is the on-disk form of a finished map: its settings plus the raw
// cell values (0 = unclaimed, palette index + 1).
type Archive struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
	Seed    int64     `json:"seed"`

	Width      int `json:"width"`
	Height     int `json:"height"`
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`

	Seeding   string `json:"seeding"`
	Spacing   int    `json:"spacing,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Adjacency string `json:"adjacency"`
	Growth    string `json:"growth"`

	Palette []biome.TextureID `json:"palette"`
	Cells   []uint8           `json:"cells"`
}

// NewArchive captures grid together with the configuration that produced it.
func NewArchive(grid *biome.Grid, cfg biome.Config, seed int64) Archive {
	a := Archive{
		ID:         uuid.New(),
		Created:    time.Now().UTC(),
		Seed:       seed,
		Width:      grid.Width(),
		Height:     grid.Height(),
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		Seeding:    cfg.Seeding.String(),
		Adjacency:  cfg.Adjacency.String(),
		Growth:     cfg.Growth.String(),
		Palette:    append([]biome.TextureID(nil), grid.Palette()...),
		Cells:      append([]uint8(nil), grid.Cells()...),
	}
	if cfg.Seeding == biome.SeedingAsymmetric {
		a.Quantity = cfg.Quantity
	} else {
		a.Spacing = cfg.Spacing
	}
	return a
}

// Grid rebuilds the map stored in the archive.
func (a Archive) Grid() (*biome.Grid, error) {
	if err := biome.CheckSize(a.Width, a.Height); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	if len(a.Cells) != a.Width*a.Height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrCorruptArchive, len(a.Cells), a.Width, a.Height)
	}
	grid, err := biome.NewGrid(a.Width, a.Height, a.Palette)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	for i, v := range a.Cells {
		if int(v) > len(a.Palette) {
			return nil, fmt.Errorf("%w: cell %d value %d exceeds palette", ErrCorruptArchive, i, v)
		}
	}
	copy(grid.Cells(), a.Cells)
	return grid, nil
}

// Save writes a as zstd-compressed JSON.
func Save(w io.Writer, a Archive) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(a); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Load reads an archive written by Save.
func Load(r io.Reader) (Archive, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Archive{}, err
	}
	defer dec.Close()

	var a Archive
	if err := json.NewDecoder(dec).Decode(&a); err != nil {
		return Archive{}, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	return a, nil
}

// SaveFile writes a to path.
func SaveFile(path string, a Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, a); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile reads an archive from path.
func LoadFile(path string) (Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return Archive{}, err
	}
	defer f.Close()
	return Load(f)
}
