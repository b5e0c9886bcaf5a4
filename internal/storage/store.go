// Package storage keeps a library of named animations on disk. Each
// entry is a directory holding the frame stack as frames.npy plus a
// metadata.json describing it.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/spritelab/internal/anim"
	"github.com/san-kum/spritelab/internal/npy"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
	Frames     int       `json:"frames"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	IntervalMS int       `json:"interval_ms"`
}

// Save writes frames under name, overwriting any previous entry.
func (s *Store) Save(name string, frames []*anim.Frame, intervalMS int) error {
	if len(frames) == 0 {
		return anim.ErrNoFrames
	}
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("storage: invalid animation name %q", name)
	}

	dir := filepath.Join(s.baseDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	meta := Metadata{
		Name:       name,
		Timestamp:  time.Now(),
		Frames:     len(frames),
		Rows:       frames[0].Rows,
		Cols:       frames[0].Cols,
		IntervalMS: intervalMS,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	return npy.SaveAnimation(filepath.Join(dir, "frames.npy"), frames)
}

// List returns metadata for every entry in the library. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	out := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		out = append(out, meta)
	}
	return out, nil
}

// Load reads the named entry's frame stack and metadata.
func (s *Store) Load(name string) ([]*anim.Frame, *Metadata, error) {
	dir := filepath.Join(s.baseDir, name)
	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return nil, nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, nil, err
	}

	frames, err := npy.LoadAnimation(filepath.Join(dir, "frames.npy"))
	if err != nil {
		return nil, nil, err
	}
	return frames, &meta, nil
}
