package csvlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Appender writes append-only delimited rows under a data directory. Each
// Append opens, writes one row, and closes - no held handles, no locks, no
// header row. Concurrent writers may interleave lines; the logs are
// non-critical by contract.
type Appender struct {
	dir string
}

func NewAppender(dir string) (*Appender, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Appender{dir: dir}, nil
}

// Append adds one record to <dir>/<name>.csv.
func (a *Appender) Append(name string, record []string) error {
	path := filepath.Join(a.dir, name+".csv")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// Path returns the absolute location of a log file, mainly for tests.
func (a *Appender) Path(name string) string {
	return filepath.Join(a.dir, name+".csv")
}
