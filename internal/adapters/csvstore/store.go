package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/ahmedfahmy1117/egx/internal/ports"
)

// RequiredColumns lists the header names every history file must carry.
var RequiredColumns = []string{"open", "high", "low", "close", "volume"}

var timeColumns = []string{"date", "time", "timestamp", "datetime"}

var timeLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02-Jan-2006",
	"02/01/2006",
}

// Store reads per-symbol daily history from <Dir>/<SYMBOL>.csv files.
type Store struct {
	Dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file holding symbol's history.
func (s *Store) Path(symbol string) string {
	return filepath.Join(s.Dir, symbol+".csv")
}

// LoadBars implements ports.BarRepository.
func (s *Store) LoadBars(ctx context.Context, symbol string) ([]*domain.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrContextCanceled, err)
	}

	path := s.Path(symbol)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ports.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	bars, err := ReadBars(f, symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bars, nil
}

// ReadBars parses a header-led CSV of daily bars. Column names are matched
// case-insensitively; extra columns are ignored. When every row carries a
// date the result is sorted oldest first.
func ReadBars(r io.Reader, symbol string) ([]*domain.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ports.ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ports.ErrMissingColumns, strings.Join(missing, ", "))
	}

	timeCol := -1
	for _, name := range timeColumns {
		if i, ok := cols[name]; ok {
			timeCol = i
			break
		}
	}

	var bars []*domain.Bar
	dated := timeCol >= 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrInvalidRecord, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		bar := &domain.Bar{Symbol: symbol}
		fields := []struct {
			name string
			dst  *float64
		}{
			{"open", &bar.Open},
			{"high", &bar.High},
			{"low", &bar.Low},
			{"close", &bar.Close},
			{"volume", &bar.Volume},
		}
		for _, fld := range fields {
			v, err := parseFloat(field(record, cols[fld.name]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ports.ErrInvalidRecord, line, fld.name, err)
			}
			*fld.dst = v
		}

		if timeCol >= 0 {
			raw := field(record, timeCol)
			if raw == "" {
				dated = false
			} else {
				ts, err := parseTime(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ports.ErrInvalidRecord, line, err)
				}
				bar.Time = ts
			}
		}
		bars = append(bars, bar)
	}

	if dated {
		sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	}
	return bars, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
