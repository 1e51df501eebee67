package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WarmupRecord is one warm-up run within an experiment.
type WarmupRecord struct {
	Run int
	WarmupMetric
}

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "warmup", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteWarmupRecords(records []WarmupRecord) error {
	path := filepath.Join(w.baseDir, "warmup_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create warmup records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "goroutines", "duration", "candidates", "invalid", "evaluations", "cache_hits", "entries"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write warmup records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Run),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Invalid),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.Entries),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write warmup record row: %w", err)
		}
	}

	return nil
}
