package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spektr-org/hrdiagram/engine"
	"github.com/spektr-org/hrdiagram/schema"
)

// ============================================================================
// ASU-TSV PARSER — VizieR tab-separated output → []engine.Star
// ============================================================================
// Layout of one table:
//
//	#comment lines (#RESOURCE, #INFO, #Column ...)
//	Lc	B-V	VMag	SpType      ← column names
//	   	mag	mag	            ← units
//	--	-----	-----	-----       ← separator
//	5	 0.656	 4.83	G2V         ← data
//
// Only the first table is read. Rows with a blank required field are
// dropped; a cell that does not parse fails the whole response.
// ============================================================================

// ParseStats reports what the parser saw.
type ParseStats struct {
	Rows    int // data rows read
	Skipped int // rows dropped for blank required fields
}

type parseState int

const (
	stateHeader parseState = iota
	stateUnits
	stateData
)

// ParseTSV reads an ASU-TSV response using the schema to locate columns.
func ParseTSV(r io.Reader, sch schema.Config) ([]engine.Star, ParseStats, error) {
	var (
		stats   ParseStats
		stars   []engine.Star
		index   map[string]int
		state   = stateHeader
		afterHd = 0
	)

	withSp := sch.HasDimension("sptype")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "#") {
			if isQueryError(line) {
				return nil, stats, fmt.Errorf("%w: %s", ErrDataUnavailable, strings.TrimSpace(strings.TrimPrefix(line, "#")))
			}
			if state == stateData {
				break
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			if state == stateData {
				break
			}
			continue
		}

		fields := strings.Split(line, "\t")

		switch state {
		case stateHeader:
			idx, err := headerIndex(fields, sch)
			if err != nil {
				return nil, stats, err
			}
			index = idx
			state = stateUnits
			continue
		case stateUnits:
			afterHd++
			if isSeparator(fields) {
				state = stateData
				continue
			}
			if afterHd == 1 {
				continue // units row
			}
			state = stateData
		}

		stats.Rows++
		star, ok, err := parseRow(fields, index, withSp)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: row %d: %v", ErrMalformedResponse, stats.Rows, err)
		}
		if !ok {
			stats.Skipped++
			continue
		}
		stars = append(stars, star)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: read body: %v", ErrDataUnavailable, err)
	}

	if index == nil {
		return nil, stats, fmt.Errorf("%w: no column header", ErrMalformedResponse)
	}
	if len(stars) == 0 {
		return nil, stats, ErrEmptyResult
	}
	return stars, stats, nil
}

// headerIndex maps every schema column to its position in the header row.
func headerIndex(fields []string, sch schema.Config) (map[string]int, error) {
	pos := make(map[string]int, len(fields))
	for i, f := range fields {
		pos[strings.TrimSpace(f)] = i
	}

	index := make(map[string]int)
	for _, col := range sch.Columns() {
		i, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedResponse, col)
		}
		index[col] = i
	}
	return index, nil
}

func parseRow(fields []string, index map[string]int, withSp bool) (engine.Star, bool, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	lc, bv, mv := cell(schema.ColumnLumClass), cell(schema.ColumnColorIndex), cell(schema.ColumnAbsMag)
	sp := ""
	if withSp {
		sp = cell(schema.ColumnSpType)
		if sp == "" {
			return engine.Star{}, false, nil
		}
	}
	if lc == "" || bv == "" || mv == "" {
		return engine.Star{}, false, nil
	}

	code, err := parseCode(lc)
	if err != nil {
		return engine.Star{}, false, fmt.Errorf("%s %q: %w", schema.ColumnLumClass, lc, err)
	}
	colorIndex, err := strconv.ParseFloat(bv, 64)
	if err != nil {
		return engine.Star{}, false, fmt.Errorf("%s %q: %w", schema.ColumnColorIndex, bv, err)
	}
	absMag, err := strconv.ParseFloat(mv, 64)
	if err != nil {
		return engine.Star{}, false, fmt.Errorf("%s %q: %w", schema.ColumnAbsMag, mv, err)
	}

	return engine.Star{LumClass: code, ColorIndex: colorIndex, AbsMag: absMag, SpType: sp}, true, nil
}

// parseCode accepts "5" and integral floats such as "5.0".
func parseCode(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer code")
	}
	return int(f), nil
}

func isSeparator(fields []string) bool {
	seen := false
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.Trim(f, "-") != "" {
			return false
		}
		seen = true
	}
	return seen
}

func isQueryError(line string) bool {
	return strings.Contains(line, `QUERY_STATUS="ERROR"`) || strings.HasPrefix(line, "#***")
}
