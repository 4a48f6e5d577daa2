package geolib

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const (
	DefaultFileCacheName = "geo"

	fileCacheDirPerm  = 0755
	fileCacheFilePerm = 0644
)

// FileCache keeps all entries in memory and dumps them into a single
// JSON document on each mutation. It is safe for concurrent use.
type FileCache struct {
	fs      afero.Fs
	dir     string
	path    string
	mutex   sync.RWMutex
	storage map[string]json.RawMessage
}

func (f *FileCache) Get(key string) ([]byte, bool) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	value, ok := f.storage[cacheKey(key)]
	if !ok {
		return nil, false
	}

	return append([]byte(nil), value...), true
}

func (f *FileCache) Has(key string) bool {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	_, ok := f.storage[cacheKey(key)]

	return ok
}

func (f *FileCache) Set(key string, value []byte) error {
	compacted, err := compactCacheValue(value)
	if err != nil {
		return err
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.storage[cacheKey(key)] = compacted

	return f.dump()
}

func (f *FileCache) Remove(key string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	hashed := cacheKey(key)

	if _, ok := f.storage[hashed]; !ok {
		return nil
	}

	delete(f.storage, hashed)

	return f.dump()
}

// Path returns a path to the backing JSON document.
func (f *FileCache) Path() string {
	return f.path
}

func (f *FileCache) load() {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return
	}

	storage := map[string]json.RawMessage{}

	if err := json.Unmarshal(data, &storage); err != nil || storage == nil {
		return
	}

	f.storage = storage
}

func (f *FileCache) dump() error {
	data, err := json.Marshal(f.storage)
	if err != nil {
		return fmt.Errorf("cannot serialize cache: %w", err)
	}

	tmpFile, err := afero.TempFile(f.fs, f.dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()      // nolint: errcheck
		f.fs.Remove(tmpName) // nolint: errcheck

		return fmt.Errorf("cannot write cache: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		f.fs.Remove(tmpName) // nolint: errcheck

		return fmt.Errorf("cannot close temporary file: %w", err)
	}

	f.fs.Chmod(tmpName, fileCacheFilePerm) // nolint: errcheck

	if err := f.fs.Rename(tmpName, f.path); err != nil {
		f.fs.Remove(tmpName) // nolint: errcheck

		return fmt.Errorf("cannot move cache file into %s: %w", f.path, err)
	}

	return nil
}

// NewFileCache creates a cache backed by <dir>/<name>.json. Directory
// is created if it is absent. Missing or broken files mean an empty
// cache: this constructor never fails, errors surface on writes.
func NewFileCache(fs afero.Fs, dir, name string) *FileCache {
	if name == "" {
		name = DefaultFileCacheName
	}

	fs.MkdirAll(dir, fileCacheDirPerm) // nolint: errcheck

	rv := &FileCache{
		fs:      fs,
		dir:     dir,
		path:    filepath.Join(dir, name+".json"),
		storage: map[string]json.RawMessage{},
	}

	rv.load()

	return rv
}
