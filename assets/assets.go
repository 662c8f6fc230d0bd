// Package assets locates sprites and shaders on disk and watches them for changes.
// The directory doubles as the default asset tree; the shader is embedded as a fallback.
package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed shaders/background.kage
var backgroundShader []byte

const (
	EyeSprite        = "sprites/eye.png"
	PupilSprite      = "sprites/black-eye.png"
	BackgroundShader = "shaders/background.kage"
)

// Type classifies an asset by extension.
type Type int

const (
	TypeNone Type = iota
	TypeImage
	TypeShader
)

// TypeOf returns the asset type for a path.
func TypeOf(path string) Type {
	switch filepath.Ext(path) {
	case ".png":
		return TypeImage
	case ".kage":
		return TypeShader
	}
	return TypeNone
}

// Store reads assets relative to a root directory.
type Store struct {
	dir  string
	fsys fs.FS
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, fsys: os.DirFS(dir)}
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path joins name onto the root directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(name))
}

// Image decodes a PNG asset.
func (s *Store) Image(name string) (image.Image, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sprite %s: %w", name, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

// Shader returns the shader source and whether it came from disk.
// A missing file falls back to the embedded source; other read errors are returned.
func (s *Store) Shader(name string) ([]byte, bool, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultShader(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read shader %s: %w", name, err)
	}
	return data, true, nil
}

// DefaultShader returns a copy of the embedded background shader.
func DefaultShader() []byte {
	return bytes.Clone(backgroundShader)
}
