package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Persisted is what survives between runs.
type Persisted struct {
	Token *Token `json:"token"`
	User  *User  `json:"user"`
}

// Storage persists the session. Load returns (nil, nil) when nothing is stored.
type Storage interface {
	Load() (*Persisted, error)
	Save(p *Persisted) error
	Clear() error
}

// FileStorage keeps the session as a JSON file, replaced atomically on save.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() (*Persisted, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var p Persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FileStorage) Save(p *Persisted) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

type MemoryStorage struct {
	mu   sync.Mutex
	data *Persisted
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (*Persisted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, nil
	}
	p := *s.data
	return &p, nil
}

func (s *MemoryStorage) Save(p *Persisted) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.data = &cp
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	return nil
}
