package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/parry-123/fish-eating-game/config"
)

// csvLog is an append-only CSV file whose header is written with the first record.
type csvLog struct {
	name          string
	file          *os.File
	headerWritten bool
}

func openCSVLog(dir, name string) (*csvLog, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvLog{name: name, file: f}, nil
}

func writeRecord[T any](l *csvLog, rec T) error {
	records := []T{rec}
	if !l.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, l.file); err != nil {
			return fmt.Errorf("writing %s: %w", l.name, err)
		}
		l.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, l.file); err != nil {
		return fmt.Errorf("writing %s: %w", l.name, err)
	}
	return nil
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	telemetry *csvLog
	perf      *csvLog
	sessions  *csvLog
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
	for _, target := range []struct {
		log  **csvLog
		name string
	}{
		{&om.telemetry, "telemetry.csv"},
		{&om.perf, "perf.csv"},
		{&om.sessions, "sessions.csv"},
	} {
		l, err := openCSVLog(dir, target.name)
		if err != nil {
			om.Close()
			return nil, err
		}
		*target.log = l
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
	return writeRecord(om.telemetry, stats)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return writeRecord(om.perf, stats.Record(windowEnd))
}

// WriteSession writes a finished session to sessions.csv.
func (om *OutputManager) WriteSession(rec SessionRecord) error {
	if om == nil {
		return nil
	}
	return writeRecord(om.sessions, rec)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, l := range []*csvLog{om.telemetry, om.perf, om.sessions} {
		if l == nil {
			continue
		}
		if err := l.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
