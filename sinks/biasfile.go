package sinks

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ringmc/actin-ring-mc/core"
)

// BiasReader reads a bias restart file: a header line (skipped) followed
// by one row per US iteration, each row's whitespace-delimited fields
// being that iteration's `enes` values.
type BiasReader struct{}

// ReadRestartEnes returns the numbins-length `enes` row for restartIter
// (1-indexed over the rows following the header).
func (BiasReader) ReadRestartEnes(path string, restartIter, numbins int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sinks: open bias restart file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("sinks: bias restart file %q has no header line", path)
	}

	row := 0
	for scanner.Scan() {
		row++
		if row != restartIter {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < numbins {
			return nil, fmt.Errorf("sinks: bias restart row %d has %d fields, want %d", restartIter, len(fields), numbins)
		}

		enes := make([]float64, numbins)
		for i := 0; i < numbins; i++ {
			v, parseErr := strconv.ParseFloat(fields[i], 64)
			if parseErr != nil {
				return nil, fmt.Errorf("sinks: bias restart row %d field %d: %w", restartIter, i, parseErr)
			}
			enes[i] = v
		}
		return enes, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sinks: scan bias restart file %q: %w", path, err)
	}
	return nil, fmt.Errorf("sinks: row %d in %q: %w", restartIter, path, core.ErrBiasRestartRow)
}
