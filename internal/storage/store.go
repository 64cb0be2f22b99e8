package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/isoline/internal/config"
	"github.com/san-kum/isoline/internal/contour"
	"github.com/san-kum/isoline/internal/engine"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	metaFile     = "metadata.json"
	framesFile   = "frames.csv"
	segmentsFile = "segments.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Field      string             `json:"field"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	Saddle     string             `json:"saddle"`
	Degenerate int                `json:"degenerate"`
	Metrics    map[string]float64 `json:"metrics"`
	Config     *config.Config     `json:"config"`
}

// Series is the per-frame record of a run.
type Series struct {
	Segments []float64
	Lengths  []float64
	Above    []float64
}

func newRunID(field string) string {
	return field + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Save writes metadata, the per-frame series and the last frame's segments
// under a fresh run directory and returns its ID.
func (s *Store) Save(cfg *config.Config, result *engine.Result) (string, error) {
	runID := newRunID(cfg.Field)
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Field:      cfg.Field,
		Timestamp:  time.Now(),
		Seed:       cfg.Seed,
		Frames:     result.Frames,
		Saddle:     cfg.Saddle,
		Degenerate: result.Degenerate,
		Metrics:    result.Metrics,
		Config:     cfg,
	}
	if err := writeJSON(filepath.Join(runDir, metaFile), meta); err != nil {
		return "", err
	}

	rows := make([][]string, 0, result.Frames+1)
	rows = append(rows, []string{"frame", "segments", "length", "above"})
	for i := range result.Segments {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatFloat(result.Segments[i]),
			formatFloat(result.Lengths[i]),
			formatFloat(result.AboveFractions[i]),
		})
	}
	if err := writeCSV(filepath.Join(runDir, framesFile), rows); err != nil {
		return "", err
	}

	rows = rows[:0]
	rows = append(rows, []string{"x1", "y1", "x2", "y2"})
	for _, seg := range result.Final.Segments {
		rows = append(rows, []string{
			formatFloat(seg.P1.X), formatFloat(seg.P1.Y),
			formatFloat(seg.P2.X), formatFloat(seg.P2.Y),
		})
	}
	if err := writeCSV(filepath.Join(runDir, segmentsFile), rows); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", metaFile, err)
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) (*Series, error) {
	records, err := s.readCSV(runID, framesFile)
	if err != nil {
		return nil, err
	}

	series := &Series{}
	for _, rec := range records {
		vals, ok := parseFloats(rec, 4)
		if !ok {
			continue
		}
		series.Segments = append(series.Segments, vals[1])
		series.Lengths = append(series.Lengths, vals[2])
		series.Above = append(series.Above, vals[3])
	}
	return series, nil
}

func (s *Store) LoadSegments(runID string) ([]contour.Segment, error) {
	records, err := s.readCSV(runID, segmentsFile)
	if err != nil {
		return nil, err
	}

	segs := make([]contour.Segment, 0, len(records))
	for _, rec := range records {
		v, ok := parseFloats(rec, 4)
		if !ok {
			continue
		}
		segs = append(segs, contour.Segment{
			P1: r2.Vec{X: v[0], Y: v[1]},
			P2: r2.Vec{X: v[2], Y: v[3]},
		})
	}
	return segs, nil
}

// readCSV returns the data rows of a run file, header dropped.
func (s *Store) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

func parseFloats(rec []string, n int) ([]float64, bool) {
	if len(rec) < n {
		return nil, false
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// formatFloat writes the shortest text that parses back to v exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
