package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/gamebook/internal/ctxlog"
	"github.com/specialistvlad/gamebook/internal/fsutil"
	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// ConfirmFunc asks the operator whether the existing file at path may be
// overwritten.
type ConfirmFunc func(ctx context.Context, path string) (bool, error)

// Store loads and saves adventure files using a set of codecs.
type Store struct {
	entry    nodeid.ID
	fallback Codec
	byExt    map[string]Codec
	exts     []string
}

// New creates a Store. The first codec is used for files whose extension no
// codec claims. It panics when no codec is given.
func New(entry nodeid.ID, codecs ...Codec) *Store {
	if len(codecs) == 0 {
		panic("storage: at least one codec is required")
	}
	if entry.IsZero() {
		entry = nodeid.Entry
	}
	s := &Store{entry: entry, fallback: codecs[0], byExt: make(map[string]Codec)}
	for _, c := range codecs {
		for _, ext := range c.Extensions() {
			ext = strings.ToLower(ext)
			if _, dup := s.byExt[ext]; dup {
				continue
			}
			s.byExt[ext] = c
			s.exts = append(s.exts, ext)
		}
	}
	return s
}

// CodecFor returns the codec handling path.
func (s *Store) CodecFor(path string) Codec {
	if c, ok := s.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return s.fallback
}

// Load reads, decodes and schema-checks the adventure at path.
func (s *Store) Load(ctx context.Context, path string) (*graph.Store, error) {
	logger := ctxlog.FromContext(ctx)
	codec := s.CodecFor(path)
	logger.Debug("Loading adventure.", "path", path, "format", codec.Name())

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(NotFound, path, nil)
		}
		return nil, newError(ReadError, path, err)
	}

	records, err := codec.Decode(data)
	if err != nil {
		return nil, newError(ParseError, path, err)
	}

	g, err := ToGraph(records, s.entry)
	if err != nil {
		return nil, newError(SchemaError, path, err)
	}

	logger.Info("Adventure loaded.", "path", path, "format", codec.Name(), "nodes", g.Len())
	return g, nil
}

// Save encodes g and writes it to path. If a file already exists there,
// confirm must approve the overwrite; a refusal returns ErrDeclined and
// leaves the file untouched, as does any write failure.
func (s *Store) Save(ctx context.Context, g graph.Reader, path string, confirm ConfirmFunc) error {
	logger := ctxlog.FromContext(ctx)
	codec := s.CodecFor(path)
	logger.Debug("Saving adventure.", "path", path, "format", codec.Name(), "nodes", g.Len())

	exists, err := fsutil.Exists(path)
	if err != nil {
		return newError(WriteError, path, err)
	}
	if exists {
		if confirm == nil {
			return ErrDeclined
		}
		ok, err := confirm(ctx, path)
		if err != nil {
			return fmt.Errorf("confirming overwrite of %s: %w", path, err)
		}
		if !ok {
			logger.Debug("Overwrite declined.", "path", path)
			return ErrDeclined
		}
	}

	data, err := codec.Encode(FromGraph(g))
	if err != nil {
		return newError(WriteError, path, fmt.Errorf("encode %s: %w", codec.Name(), err))
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return newError(WriteError, path, err)
	}

	logger.Info("Adventure saved.", "path", path, "format", codec.Name(), "bytes", len(data), "overwrote", exists)
	return nil
}

// Discover lists the adventure files directly inside dir whose extension
// one of the codecs handles.
func (s *Store) Discover(dir string) ([]string, error) {
	return fsutil.FindFilesByExtension(dir, false, s.exts...)
}
