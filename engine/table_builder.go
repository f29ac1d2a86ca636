package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Produces TableData from count buckets
// ============================================================================
// One row per category in fixed order, zero rows included.
// ============================================================================

// BuildLuminosityTable renders luminosity-class buckets as an (Lc, Num) table.
func BuildLuminosityTable(buckets []Bucket) *TableData {
	return buildCountTable("Stars per luminosity class", "lc", "Lc", buckets)
}

// BuildSpectralTable renders spectral-type buckets as an (SpT, Num) table.
func BuildSpectralTable(buckets []Bucket) *TableData {
	return buildCountTable("Stars per spectral type", "spt", "SpT", buckets)
}

func buildCountTable(title, key, label string, buckets []Bucket) *TableData {
	columns := []Column{
		{Key: key, Label: label, Type: "text", Align: "left"},
		{Key: "num", Label: "Num", Type: "number", Align: "right"},
		{Key: "share", Label: "Share", Type: "number", Align: "right"},
	}

	total := TotalCount(buckets)
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Short,
			fmt.Sprintf("%d", b.Count),
			FormatPercent(b.Count, total),
		})
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Total",
			Values: map[string]string{
				"num":   fmt.Sprintf("%d", total),
				"share": FormatPercent(total, total),
			},
		},
	}
}
