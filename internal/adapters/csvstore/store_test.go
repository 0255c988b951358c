package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedfahmy1117/egx/internal/ports"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestStore_LoadBars(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "COMI.csv", `date,open,high,low,close,volume
2024-01-01,70,72,69,71,1000
2024-01-02,71,73,70,72.5,1200
`)

	bars, err := New(dir).LoadBars(context.Background(), "COMI")
	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, "COMI", bars[0].Symbol)
	assert.Equal(t, 70.0, bars[0].Open)
	assert.Equal(t, 72.0, bars[0].High)
	assert.Equal(t, 69.0, bars[0].Low)
	assert.Equal(t, 71.0, bars[0].Close)
	assert.Equal(t, 1000.0, bars[0].Volume)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), bars[1].Time)
	assert.Equal(t, 72.5, bars[1].Close)
}

func TestStore_LoadBars_NotFound(t *testing.T) {
	_, err := New(t.TempDir()).LoadBars(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestStore_LoadBars_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir()).LoadBars(ctx, "COMI")
	assert.ErrorIs(t, err, ports.ErrContextCanceled)
}

func TestReadBars_MissingColumns(t *testing.T) {
	_, err := ReadBars(strings.NewReader("date,open,high,close\n2024-01-01,1,2,1.5\n"), "X")
	require.ErrorIs(t, err, ports.ErrMissingColumns)
	assert.Contains(t, err.Error(), "low, volume")

	_, err = ReadBars(strings.NewReader(""), "X")
	assert.ErrorIs(t, err, ports.ErrMissingColumns)
}

func TestReadBars_HeaderIsCaseInsensitiveAndOrderFree(t *testing.T) {
	in := "\ufeffVolume, Close ,Low,High,Open,Extra\n500,10,9,11,9.5,ignored\n"

	bars, err := ReadBars(strings.NewReader(in), "X")
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, 9.5, bars[0].Open)
	assert.Equal(t, 11.0, bars[0].High)
	assert.Equal(t, 9.0, bars[0].Low)
	assert.Equal(t, 10.0, bars[0].Close)
	assert.Equal(t, 500.0, bars[0].Volume)
	assert.True(t, bars[0].Time.IsZero())
}

func TestReadBars_InvalidRecord(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non numeric", "open,high,low,close,volume\n1,2,1,abc,10\n"},
		{"empty cell", "open,high,low,close,volume\n1,2,1,,10\n"},
		{"nan", "open,high,low,close,volume\n1,2,1,NaN,10\n"},
		{"bad date", "date,open,high,low,close,volume\nyesterday,1,2,1,1.5,10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBars(strings.NewReader(tt.in), "X")
			require.ErrorIs(t, err, ports.ErrInvalidRecord)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReadBars_SortsDatedRowsOldestFirst(t *testing.T) {
	in := `date,open,high,low,close,volume
2024-01-03,3,3,3,3,1
2024-01-01,1,1,1,1,1
2024-01-02,2,2,2,2,1
`
	bars, err := ReadBars(strings.NewReader(in), "X")
	require.NoError(t, err)
	require.Len(t, bars, 3)
	for i, b := range bars {
		assert.Equal(t, float64(i+1), b.Close)
	}
}

func TestReadBars_UndatedRowsKeepFileOrder(t *testing.T) {
	in := "open,high,low,close,volume\n3,3,3,3,1\n\n1,1,1,1,1\n"

	bars, err := ReadBars(strings.NewReader(in), "X")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 3.0, bars[0].Close)
	assert.Equal(t, 1.0, bars[1].Close)
}

func TestReadBars_ThousandsSeparator(t *testing.T) {
	in := "open,high,low,close,volume\n1,2,1,1.5,\"1,250,000\"\n"

	bars, err := ReadBars(strings.NewReader(in), "X")
	require.NoError(t, err)
	assert.Equal(t, 1250000.0, bars[0].Volume)
}
