// Package dataset loads U.S. House election results and the auxiliary
// configuration series (districts per state, years to render, color per
// year) from delimited text files. All data is read once at construction
// and is read-only afterwards, except for the explicit column-drop
// operation on the raw results table.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Paths names the four input files a Dataset is built from.
type Paths struct {
	HouseData    string
	NumDistricts string
	Years        string
	Colors       string
}

// Record is one candidate row of the results table.
type Record struct {
	Year           int
	State          string // postal abbreviation
	District       int
	Party          string
	CandidateVotes int
	TotalVotes     int
}

// Dataset holds the election results plus the three configuration series.
type Dataset struct {
	table     *Table
	records   []Record
	districts map[string]int
	years     []int
	colors    map[int]string
}

// Load reads the four inputs. Undecodable byte sequences are discarded
// rather than failing; missing or structurally malformed files wrap
// ErrDataLoad.
func Load(p Paths) (*Dataset, error) {
	ds := &Dataset{}

	if err := ds.loadHouseData(p.HouseData); err != nil {
		return nil, err
	}
	if err := ds.loadDistricts(p.NumDistricts); err != nil {
		return nil, err
	}
	if err := ds.loadYearsAndColors(p.Years, p.Colors); err != nil {
		return nil, err
	}
	return ds, nil
}

// Records returns the typed candidate rows.
func (d *Dataset) Records() []Record { return d.records }

// Table returns the raw results table.
func (d *Dataset) Table() *Table { return d.table }

// DistrictCount returns the configured number of congressional districts
// for a state.
func (d *Dataset) DistrictCount(state string) (int, bool) {
	n, ok := d.districts[state]
	return n, ok
}

// States returns the configured state postal codes, sorted.
func (d *Dataset) States() []string {
	out := make([]string, 0, len(d.districts))
	for s := range d.districts {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Years returns the render order of years.
func (d *Dataset) Years() []int { return d.years }

// Color returns the display color assigned to a year.
func (d *Dataset) Color(year int) (string, bool) {
	c, ok := d.colors[year]
	return c, ok
}

// DropColumns reads a list of column identifiers (one per line) and
// removes each from the raw results table. An unknown column fails with
// ErrUnknownColumn; nothing is dropped past the failing entry.
func (d *Dataset) DropColumns(path string) error {
	text, err := readClean(path)
	if err != nil {
		return err
	}
	for _, name := range nonEmptyLines(text) {
		if err := d.table.dropColumn(name); err != nil {
			return err
		}
	}
	return nil
}

// requiredColumns maps each record field to the header names it accepts.
// The postal-code column is "state_po" in the MIT Election Lab export,
// with "state" accepted as a fallback.
var requiredColumns = []struct {
	names []string
}{
	{[]string{"year"}},
	{[]string{"state_po", "state"}},
	{[]string{"district"}},
	{[]string{"party"}},
	{[]string{"candidatevotes"}},
	{[]string{"totalvotes"}},
}

func (d *Dataset) loadHouseData(path string) error {
	text, err := readClean(path)
	if err != nil {
		return err
	}
	r := csv.NewReader(strings.NewReader(text))
	all, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataLoad, path, err)
	}
	if len(all) == 0 {
		return fmt.Errorf("%w: %s: empty results file", ErrDataLoad, path)
	}
	d.table = &Table{header: all[0], rows: all[1:]}

	idx := make([]int, len(requiredColumns))
	for i, col := range requiredColumns {
		idx[i] = -1
		for _, name := range col.names {
			if j := d.table.columnIndex(name); j >= 0 {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return fmt.Errorf("%w: %s: missing column %q", ErrDataLoad, path, col.names[0])
		}
	}

	d.records = make([]Record, 0, len(d.table.rows))
	for n, row := range d.table.rows {
		year, err1 := strconv.Atoi(row[idx[0]])
		district, err2 := strconv.Atoi(row[idx[2]])
		cand, err3 := strconv.Atoi(row[idx[4]])
		total, err4 := strconv.Atoi(row[idx[5]])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return fmt.Errorf("%w: %s: malformed row %d", ErrDataLoad, path, n+2)
		}
		d.records = append(d.records, Record{
			Year:           year,
			State:          row[idx[1]],
			District:       district,
			Party:          row[idx[3]],
			CandidateVotes: cand,
			TotalVotes:     total,
		})
	}
	return nil
}

func (d *Dataset) loadDistricts(path string) error {
	text, err := readClean(path)
	if err != nil {
		return err
	}
	d.districts = make(map[string]int)
	for _, line := range nonEmptyLines(text) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%w: %s: expected \"<state> <count>\", got %q", ErrDataLoad, path, line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s: non-positive district count for %s: %q", ErrDataLoad, path, fields[0], fields[1])
		}
		d.districts[fields[0]] = n
	}
	return nil
}

func (d *Dataset) loadYearsAndColors(yearsPath, colorsPath string) error {
	yearsText, err := readClean(yearsPath)
	if err != nil {
		return err
	}
	for _, line := range nonEmptyLines(yearsText) {
		y, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%w: %s: malformed year %q", ErrDataLoad, yearsPath, line)
		}
		d.years = append(d.years, y)
	}

	colorsText, err := readClean(colorsPath)
	if err != nil {
		return err
	}
	colors := nonEmptyLines(colorsText)
	if len(colors) != len(d.years) {
		return fmt.Errorf("%w: %s: %d colors for %d years", ErrDataLoad, colorsPath, len(colors), len(d.years))
	}
	// The Nth color corresponds to the Nth year; fold the positional
	// alignment into an explicit keyed map.
	d.colors = make(map[int]string, len(d.years))
	for i, y := range d.years {
		d.colors[y] = colors[i]
	}
	return nil
}

// readClean reads a file and drops byte sequences that are not valid
// UTF-8 instead of failing on them.
func readClean(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	return strings.ToValidUTF8(string(b), ""), nil
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
