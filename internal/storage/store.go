// Package storage persists exercise runs. Each run gets a directory under
// the data dir holding metadata.json, a long-format series.csv, and any
// artifact files the exercise produced.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/numlab/internal/lab"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunDir returns the directory for a run id, creating it. Exercises write
// artifacts there before the run is saved.
func (s *Store) RunDir(runID string) (string, error) {
	dir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// NewRunID builds a unique run id of the form <exercise>_<unix>.
func NewRunID(exercise string) string {
	return fmt.Sprintf("%s_%d", exercise, time.Now().Unix())
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Exercise  string             `json:"exercise"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Stats     map[string]float64 `json:"stats"`
	Artifacts []string           `json:"artifacts,omitempty"`
}

// Save writes metadata and series for a completed run and returns its id.
func (s *Store) Save(runID, exercise string, seed int64, result *lab.Result) (string, error) {
	runDir, err := s.RunDir(runID)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Exercise:  exercise,
		Timestamp: time.Now(),
		Seed:      seed,
		Stats:     result.Stats,
		Artifacts: result.Artifacts,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(result.Series) == 0 {
		return runID, nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"series", "x", "y"}); err != nil {
		return "", err
	}
	for _, series := range result.Series {
		for i := range series.X {
			row := []string{
				series.Name,
				strconv.FormatFloat(series.X[i], 'f', 6, 64),
				strconv.FormatFloat(series.Y[i], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads back the run's stored series, preserving order of first
// appearance.
func (s *Store) LoadSeries(runID string) ([]lab.Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return []lab.Series{}, nil
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []lab.Series{}, nil
	}

	order := make([]string, 0)
	byName := make(map[string]*lab.Series)

	for _, record := range records[1:] {
		if len(record) != 3 {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		if errX != nil || errY != nil {
			continue
		}

		name := record[0]
		series, ok := byName[name]
		if !ok {
			series = &lab.Series{Name: name}
			byName[name] = series
			order = append(order, name)
		}
		series.X = append(series.X, x)
		series.Y = append(series.Y, y)
	}

	out := make([]lab.Series, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out, nil
}
