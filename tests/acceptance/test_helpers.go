package acceptance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RunHashes holds the expected preview hashes of one rendered scenario.
type RunHashes struct {
	Scenario string              `json:"scenario"`
	Pages    map[string]PageHash `json:"pages"` // key is page number as string
}

type PageHash struct {
	Hash string `json:"hash"`
}

type HashStore struct {
	path         string
	updateHashes bool
	hashes       map[string]RunHashes // scenario -> hashes
}

func NewHashStore(testDataPath string) *HashStore {
	return &HashStore{
		path:         filepath.Join(testDataPath, "expected_hashes.json"),
		updateHashes: os.Getenv("UPDATE_TEST_DATA") == "true",
		hashes:       make(map[string]RunHashes),
	}
}

func (s *HashStore) Load() error {
	if s.updateHashes {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read hash file: %w", err)
	}

	var hashList []RunHashes
	if err := json.Unmarshal(data, &hashList); err != nil {
		return fmt.Errorf("failed to parse hash file: %w", err)
	}

	for _, h := range hashList {
		s.hashes[h.Scenario] = h
	}

	return nil
}

func (s *HashStore) Save() error {
	if !s.updateHashes {
		return nil
	}

	var hashList []RunHashes
	for _, h := range s.hashes {
		hashList = append(hashList, h)
	}

	sort.Slice(hashList, func(i, j int) bool {
		return hashList[i].Scenario < hashList[j].Scenario
	})

	data, err := json.MarshalIndent(hashList, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal hashes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create test data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write hash file: %w", err)
	}

	return nil
}

func (s *HashStore) UpdateScenario(scenario string, pageHashes map[string]PageHash) {
	if !s.updateHashes {
		return
	}

	s.hashes[scenario] = RunHashes{
		Scenario: scenario,
		Pages:    pageHashes,
	}
}

func (s *HashStore) GetScenario(scenario string) (RunHashes, bool) {
	hashes, exists := s.hashes[scenario]
	return hashes, exists
}

func (s *HashStore) IsUpdateMode() bool {
	return s.updateHashes
}

func GetPageNumbers(pages map[string]PageHash) []string {
	numbers := make([]string, 0, len(pages))
	for num := range pages {
		numbers = append(numbers, num)
	}
	sort.Strings(numbers)
	return numbers
}
