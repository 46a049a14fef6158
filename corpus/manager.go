// Package corpus validates a scraped dataset directory and exposes its
// articles to the processing pipelines.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
)

var (
	// ErrEmptyDirectory indicates the dataset directory holds no files.
	ErrEmptyDirectory = errors.New("dataset directory is empty")
	// ErrInconsistentDataset indicates ID slips, unpaired raw/meta files
	// or empty dataset files.
	ErrInconsistentDataset = errors.New("dataset is inconsistent")
)

var rawNamePattern = regexp.MustCompile(`^(\d+)_raw\.txt$`)

// Manager owns one validated dataset directory.
type Manager struct {
	base    string
	storage map[int]*article.Article
}

// NewManager validates the dataset under base and registers every entry.
func NewManager(base string) (*Manager, error) {
	m := &Manager{base: base, storage: make(map[int]*article.Article)}
	if err := m.validateDataset(); err != nil {
		return nil, err
	}
	if err := m.scanDataset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Base returns the dataset directory path.
func (m *Manager) Base() string {
	return m.base
}

// Articles returns the registered articles keyed by ID.
func (m *Manager) Articles() map[int]*article.Article {
	return m.storage
}

// IDs returns the registered article IDs in ascending order.
func (m *Manager) IDs() []int {
	ids := make([]int, 0, len(m.storage))
	for id := range m.storage {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// validateDataset checks that raw and meta files pair up as 1..N with no
// slips and no empty files.
func (m *Manager) validateDataset() error {
	info, err := os.Stat(m.base)
	if err != nil {
		return fmt.Errorf("dataset directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dataset path %s is not a directory", m.base)
	}

	entries, err := os.ReadDir(m.base)
	if err != nil {
		return fmt.Errorf("failed to list dataset directory: %w", err)
	}
	if len(entries) == 0 {
		return ErrEmptyDirectory
	}

	rawIDs := make(map[int]bool)
	metaIDs := make(map[int]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, "_raw.txt"):
			id, err := fileID(name)
			if err != nil {
				continue
			}
			rawIDs[id] = true
		case strings.HasSuffix(name, "_meta.json"):
			id, err := fileID(name)
			if err != nil {
				continue
			}
			metaIDs[id] = true
		}
	}

	if len(rawIDs) != len(metaIDs) {
		return fmt.Errorf("%w: %d raw files but %d meta files",
			ErrInconsistentDataset, len(rawIDs), len(metaIDs))
	}

	for id := 1; id <= len(rawIDs); id++ {
		if !rawIDs[id] || !metaIDs[id] {
			return fmt.Errorf("%w: missing raw or meta file for ID %d",
				ErrInconsistentDataset, id)
		}
		for _, name := range []string{
			fmt.Sprintf("%d_raw.txt", id),
			fmt.Sprintf("%d_meta.json", id),
		} {
			info, err := os.Stat(filepath.Join(m.base, name))
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", name, err)
			}
			if info.Size() == 0 {
				return fmt.Errorf("%w: %s is empty", ErrInconsistentDataset, name)
			}
		}
	}
	return nil
}

// scanDataset loads every raw file, picking the article URL up from the
// paired meta file.
func (m *Manager) scanDataset() error {
	entries, err := os.ReadDir(m.base)
	if err != nil {
		return fmt.Errorf("failed to list dataset directory: %w", err)
	}

	for _, entry := range entries {
		match := rawNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		id, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		art, err := article.FromMeta(filepath.Join(m.base, fmt.Sprintf("%d_meta.json", id)))
		if err != nil {
			return err
		}
		if _, err := article.FromRaw(filepath.Join(m.base, entry.Name()), art); err != nil {
			return err
		}
		m.storage[id] = art
	}
	return nil
}

func fileID(name string) (int, error) {
	idx := strings.Index(name, "_")
	if idx <= 0 {
		return 0, fmt.Errorf("no ID prefix in %s", name)
	}
	return strconv.Atoi(name[:idx])
}
