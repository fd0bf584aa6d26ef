package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/annaaimenedger987-crypto/massageBot/models"
	"github.com/annaaimenedger987-crypto/massageBot/utils"
)

// FileStore keeps the state document in a single JSON file on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. On first run the file does not exist
// yet: an empty document is written and returned. A present but unparseable
// file degrades to an empty document instead of crashing; the damage is
// logged loudly and the broken file is left in place until the next Save.
func (s *FileStore) Load() (models.Document, error) {
	logger := utils.GetLogger()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := models.EmptyDocument()
		if err := s.Save(doc); err != nil {
			return doc, fmt.Errorf("bootstrap %s: %w", s.path, err)
		}
		return doc, nil
	}
	if err != nil {
		return models.EmptyDocument(), fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Error("data file is unparseable, starting from empty state",
			zap.String("path", s.path), zap.Error(err))
		return models.EmptyDocument(), nil
	}

	// Old files may carry null collections; normalise so the ledger never
	// has to nil-check.
	if doc.Services == nil {
		doc.Services = []models.Service{}
	}
	if doc.Overrides == nil {
		doc.Overrides = map[string][]string{}
	}
	if doc.Appointments == nil {
		doc.Appointments = map[string][]models.Booking{}
	}
	return doc, nil
}

// Save writes the document atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *FileStore) Save(doc models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s to %s: %w", tmpName, s.path, err)
	}
	return nil
}
