package archive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store pins entrant ledger snapshots off-chain before randomness is
// requested. Once a snapshot is pinned its uri is authoritative even if the
// live ledger is closed.
type Store interface {
	Upload(ctx context.Context, data []byte) (string, error)
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

const uriScheme = "archive://"

// DirStore is a content-addressed directory store. The uri embeds the
// snapshot's sha256, so a fetched snapshot can always be verified against its
// pin.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Upload(_ context.Context, data []byte) (string, error) {
	digest := sha256.Sum256(data)
	name := hex.EncodeToString(digest[:])
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write archive %s: %w", name, err)
	}
	return uriScheme + name, nil
}

func (s *DirStore) Fetch(_ context.Context, uri string) ([]byte, error) {
	name := strings.TrimPrefix(uri, uriScheme)
	if name == uri || strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("invalid archive uri %q", uri)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", name, err)
	}
	digest := sha256.Sum256(data)
	if hex.EncodeToString(digest[:]) != name {
		return nil, fmt.Errorf("archive %s failed content verification", name)
	}
	return data, nil
}
