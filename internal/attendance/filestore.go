package attendance

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore implements Persistence with one JSON file per key
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a new FileStore rooted at dir
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// Get returns the stored value for key, or ok=false when absent
func (fs *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read state file: %w", err)
	}

	return string(data), true, nil
}

// Set stores the value for key
func (fs *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	if err := os.WriteFile(fs.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	fs.logger.Debug("State file saved", zap.String("key", key))

	return nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}
