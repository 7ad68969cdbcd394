package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/cellwars/config"
)

// csvStream is an append-only CSV file that writes its header with the first record.
type csvStream struct {
	name          string
	file          *os.File
	headerWritten bool
}

func createStream(dir, name string) (*csvStream, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvStream{name: name, file: f}, nil
}

// write marshals records (a slice of csv-tagged structs).
func (s *csvStream) write(records any) error {
	var err error
	if !s.headerWritten {
		err = gocsv.Marshal(records, s.file)
		s.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, s.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.name, err)
	}
	return nil
}

// OutputManager handles structured match output with CSV logging.
type OutputManager struct {
	dir       string
	telemetry *csvStream
	teams     *csvStream
	perf      *csvStream
	bookmarks *csvStream
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, s := range []struct {
		dst  **csvStream
		name string
	}{
		{&om.telemetry, "telemetry.csv"},
		{&om.teams, "teams.csv"},
		{&om.perf, "perf.csv"},
		{&om.bookmarks, "bookmarks.csv"},
	} {
		stream, err := createStream(dir, s.name)
		if err != nil {
			om.Close()
			return nil, err
		}
		*s.dst = stream
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.write([]WindowStats{stats})
}

// WriteTeams writes one row per team to teams.csv.
func (om *OutputManager) WriteTeams(records []TeamRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	return om.teams.write(records)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, match int, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfStatsCSV{stats.ToCSV(match, windowEnd)})
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return om.bookmarks.write([]Bookmark{b})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var errs []error
	for _, s := range []*csvStream{om.telemetry, om.teams, om.perf, om.bookmarks} {
		if s == nil {
			continue
		}
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
