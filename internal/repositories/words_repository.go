package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/legalneuro/backend/internal/models"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// prettyOptions formats the data file with two-space indentation keeping key order
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// wordsRepository stores the whole vocabulary dataset in a single JSON file.
//
// The file is read and rewritten in full on every call without any locking,
// two concurrent writers race and the last Save wins.
type wordsRepository struct {
	path   string
	logger *zap.Logger
}

// NewWordsRepository creates a new file-backed words repository
func NewWordsRepository(path string, logger *zap.Logger) *wordsRepository {
	return &wordsRepository{
		path:   path,
		logger: logger,
	}
}

// Load is a WordsRepository implementation for reading the dataset from the data file.
//
// If the file does not exist the default dataset is written to it and returned.
// If the file can not be read or parsed the default dataset is returned and the file is left untouched,
// the next Save overwrites it.
// An error is returned only if the default dataset can not be written.
func (r *wordsRepository) Load(ctx context.Context) (*models.Dataset, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("data file not found, creating default dataset", zap.String("path", r.path))
		dataset := DefaultDataset()
		if err := r.Save(ctx, dataset); err != nil {
			return nil, err
		}
		return dataset, nil
	}
	if err != nil {
		r.logger.Warn("failed to read data file, using default dataset", zap.String("path", r.path), zap.Error(err))
		return DefaultDataset(), nil
	}

	dataset := &models.Dataset{}
	if err := dataset.UnmarshalJSON(data); err != nil {
		r.logger.Warn("failed to parse data file, using default dataset", zap.String("path", r.path), zap.Error(err))
		return DefaultDataset(), nil
	}

	return dataset, nil
}

// Save is a WordsRepository implementation for overwriting the data file with the whole dataset.
//
// The containing directory is created if it is missing.
// The write is not atomic, a crash in the middle leaves a corrupt file which the next Load replaces with the default dataset.
func (r *wordsRepository) Save(ctx context.Context, dataset *models.Dataset) error {
	raw, err := dataset.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		r.logger.Error("failed to create data directory", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(r.path, pretty.PrettyOptions(raw, prettyOptions), 0644); err != nil {
		r.logger.Error("failed to write data file", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("failed to write data file: %w", err)
	}

	return nil
}
