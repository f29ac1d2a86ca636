package engine

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================================
// AGGREGATORS — Counting and bucketing
// ============================================================================
// Both counters are pure: fixed category order, out-of-set values dropped
// without error. Bucketing produces one SubView per luminosity class.
// ============================================================================

// CountLuminosityClasses returns six counts, one per class code 1..6.
// Codes outside 1..6 are not counted.
func CountLuminosityClasses(codes []int) []int {
	counts := make([]int, len(LuminosityClasses))
	for _, c := range codes {
		if c >= 1 && c <= len(counts) {
			counts[c-1]++
		}
	}
	return counts
}

// CountSpectralTypes returns seven counts in O, B, A, F, G, K, M order,
// classified by the first character of each type string. Matching is exact
// and case-sensitive.
func CountSpectralTypes(types []string) []int {
	index := make(map[string]int, len(SpectralTypes))
	for i, c := range SpectralTypes {
		index[c.Key] = i
	}

	counts := make([]int, len(SpectralTypes))
	for _, t := range types {
		letter, ok := SpectralLetter(t)
		if !ok {
			continue
		}
		if i, ok := index[letter]; ok {
			counts[i]++
		}
	}
	return counts
}

// ============================================================================
// COLUMN EXTRACTION
// ============================================================================

// LuminosityCodes reads the class code of every record. Non-numeric codes
// come back as 0 and are ignored by CountLuminosityClasses.
func LuminosityCodes(view RecordView) []int {
	codes := make([]int, view.Len())
	for i := range codes {
		if c, err := strconv.Atoi(view.Dimension(i, DimLumClass)); err == nil {
			codes[i] = c
		}
	}
	return codes
}

// SpectralTypeStrings reads the spectral type of every record.
func SpectralTypeStrings(view RecordView) []string {
	types := make([]string, view.Len())
	for i := range types {
		types[i] = view.Dimension(i, DimSpType)
	}
	return types
}

// ============================================================================
// BUCKETING
// ============================================================================

// BucketByLuminosityClass splits the view into six buckets in class order.
// Every bucket is present, empty ones included. Each bucket holds a SubView
// of its members; the source view is left untouched.
func BucketByLuminosityClass(view RecordView) []Bucket {
	buckets := make([]Bucket, len(LuminosityClasses))
	for i, c := range LuminosityClasses {
		sub := FilterByLuminosityClass(view, i+1)
		buckets[i] = Bucket{Category: c, Count: sub.Len(), View: sub}
	}
	return buckets
}

// SpectralBuckets returns the seven spectral-type buckets with counts only.
func SpectralBuckets(view RecordView) []Bucket {
	counts := CountSpectralTypes(SpectralTypeStrings(view))
	return countBuckets(SpectralTypes, counts)
}

// LuminosityBuckets returns the six luminosity buckets with counts only.
func LuminosityBuckets(codes []int) []Bucket {
	return countBuckets(LuminosityClasses, CountLuminosityClasses(codes))
}

func countBuckets(categories []Category, counts []int) []Bucket {
	buckets := make([]Bucket, len(categories))
	for i, c := range categories {
		buckets[i] = Bucket{Category: c, Count: counts[i]}
	}
	return buckets
}

// TotalCount sums bucket counts.
func TotalCount(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

// ============================================================================
// RANGES
// ============================================================================

// MeasureRange returns min and max of a measure across several views.
// ok is false when no view holds a finite value.
func MeasureRange(views []RecordView, measure string) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range views {
		if v == nil {
			continue
		}
		for i := 0; i < v.Len(); i++ {
			m := v.Measure(i, measure)
			if math.IsNaN(m) || math.IsInf(m, 0) {
				continue
			}
			lo = math.Min(lo, m)
			hi = math.Max(hi, m)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatPercent formats part/total as a one-decimal percentage.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
