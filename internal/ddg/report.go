package ddg

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// mutationPositionRe splits a mutation name into wild type + chain,
// position, and target.
var mutationPositionRe = regexp.MustCompile(`^[A-Z]{2}(\d+)[A-Z]$`)

// Row is one line of the final report: a mutation, the energy record it
// came from, and its stability change against the wild type.
type Row struct {
	Mutation string
	File     string
	DDG      float64
}

// parseEnergy pulls the total energy out of a Stability fxout file: the
// second whitespace-separated field of the first line that has a numeric
// one. Returns an error when no such line exists, which also covers the
// empty records a crashed run leaves behind.
func parseEnergy(data []byte) (float64, error) {
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("no energy value found")
}

// Aggregate reads every mutant energy record in the store, subtracts the
// wild-type reference energy from each, and returns the rows grouped by
// ascending residue position with each group sorted by DDG descending.
//
// A record that matches the energy-file pattern but carries no mutation
// code is fatal: it means the directory holds files from some other run
// and the caller should clear it and rerun.
func Aggregate(store *Store, base string) ([]Row, error) {
	refRec := base + "_Repair_0_ST.fxout"
	refData, err := store.Read(refRec)
	if err != nil {
		return nil, fmt.Errorf("wild-type energy record %s: %v", refRec, err)
	}
	refEnergy, err := parseEnergy(refData)
	if err != nil {
		return nil, fmt.Errorf("wild-type energy record %s: %v", refRec, err)
	}

	records, err := store.Glob(base + "_Repair_*_0_ST.fxout")
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, rec := range records {
		if rec == refRec {
			continue
		}

		code := mutationCodeRe.FindString(rec)
		if code == "" {
			return nil, fmt.Errorf("cannot extract a mutation name from %s, clear the directory and rerun", rec)
		}

		data, err := store.Read(rec)
		if err != nil {
			return nil, err
		}
		energy, err := parseEnergy(data)
		if err != nil {
			return nil, fmt.Errorf("energy record %s: %v", rec, err)
		}

		rows = append(rows, Row{
			Mutation: code,
			File:     rec,
			DDG:      energy - refEnergy,
		})
	}

	sortRows(rows)
	return rows, nil
}

// position extracts the residue position from a mutation name, 0 when the
// name doesn't parse.
func position(mutation string) int {
	m := mutationPositionRe.FindStringSubmatch(mutation)
	if m == nil {
		return 0
	}

	p, _ := strconv.Atoi(m[1])
	return p
}

// sortRows groups rows by ascending residue position and orders each
// group by DDG descending.
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := position(rows[i].Mutation), position(rows[j].Mutation)
		if pi != pj {
			return pi < pj
		}
		return rows[i].DDG > rows[j].DDG
	})
}

// reportHeaders are the report's column titles.
var reportHeaders = []string{"Mutation", "Source File", "Stability (DDG)"}

// WriteReport renders the rows as a plain-text table in the store.
func WriteReport(store *Store, name string, rows []Row) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(reportHeaders)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	widths := make([]int, len(reportHeaders))
	for i, h := range reportHeaders {
		widths[i] = len(h)
	}

	for _, r := range rows {
		cells := []string{r.Mutation, r.File, fmt.Sprintf("%.4f", r.DDG)}
		for i, c := range cells {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
		table.Append(cells)
	}
	table.Render()

	// closing rule under the table
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	buf.WriteString(strings.Join(rule, "  ") + "\n")

	return store.Write(name, buf.Bytes())
}
