// Package files provides a directory-backed slot storage provider. Each
// savefile slot maps to one file in the directory; the reserved index slot
// maps to a separate index file. Writes go through an atomic
// rename so a crash mid-write never leaves a torn save on disk.
package files

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/agentstation/saveslot/pkg/constants"
	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/storage"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ storage.Provider = (*Provider)(nil)
	_ storage.Deleter  = (*Provider)(nil)
)

// Option is a function that configures a files Provider.
type Option func(*Provider) error

// WithExtension configures the file extension for slot files.
// The default is ".dat".
func WithExtension(ext string) Option {
	return func(p *Provider) error {
		if ext == "" {
			return errors.NewConfigError("files storage", "extension cannot be empty", nil)
		}
		p.ext = ext
		return nil
	}
}

// WithIndexName configures the base name of the reserved index file.
// The default is "index".
func WithIndexName(name string) Option {
	return func(p *Provider) error {
		if name == "" {
			return errors.NewConfigError("files storage", "index name cannot be empty", nil)
		}
		p.indexName = name
		return nil
	}
}

// Provider stores slots as files in a single directory.
type Provider struct {
	dir       string
	ext       string
	indexName string
}

// New creates a files storage provider rooted at dir, creating the
// directory if needed.
func New(dir string, opts ...Option) (*Provider, error) {
	if dir == "" {
		return nil, errors.NewConfigError("files storage", "directory is required", nil)
	}
	p := &Provider{
		dir:       dir,
		ext:       ".dat",
		indexName: "index",
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return p, nil
}

// Path returns the file path backing a slot.
func (p *Provider) Path(slot int) string {
	if slot == storage.IndexSlot {
		return filepath.Join(p.dir, p.indexName+p.ext)
	}
	return filepath.Join(p.dir, fmt.Sprintf("save%02d%s", slot, p.ext))
}

// Exists reports whether the slot's file is present and non-empty.
func (p *Provider) Exists(slot int) bool {
	info, err := os.Stat(p.Path(slot))
	return err == nil && info.Size() > 0
}

// Load reads the slot's file.
func (p *Provider) Load(slot int) ([]byte, error) {
	path := p.Path(slot)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewSlotError("read", slot, errors.ErrSlotEmpty)
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(data) == 0 {
		return nil, errors.NewSlotError("read", slot, errors.ErrSlotEmpty)
	}
	return data, nil
}

// Save writes the slot's file atomically.
func (p *Provider) Save(slot int, data []byte) error {
	path := p.Path(slot)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Delete removes the slot's file. Deleting an absent slot is not an error.
func (p *Provider) Delete(slot int) error {
	path := p.Path(slot)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("delete", path, err)
	}
	return nil
}
