package engine

import "unicode/utf8"

// ============================================================================
// FILTERS — Category filtering via RecordView
// ============================================================================
// Filters never touch the parent. They return a SubView (index list into
// the parent), so the same filter can be reapplied to the full dataset.
// ============================================================================

// FilterByDimension returns the records whose dimension equals value exactly.
func FilterByDimension(view RecordView, dimension, value string) RecordView {
	n := view.Len()
	indices := make([]int, 0)
	for i := 0; i < n; i++ {
		if view.Dimension(i, dimension) == value {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// FilterByLuminosityClass returns the stars with the given class code.
func FilterByLuminosityClass(view RecordView, code int) RecordView {
	key := ""
	if code >= 1 && code <= len(LuminosityClasses) {
		key = LuminosityClasses[code-1].Key
	}
	if key == "" {
		return newSubView(view, []int{})
	}
	return FilterByDimension(view, DimLumClass, key)
}

// SpectralLetter returns the leading character of a spectral type string.
// ok is false for an empty string.
func SpectralLetter(spType string) (string, bool) {
	if spType == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(spType)
	if r == utf8.RuneError && size <= 1 {
		return spType[:1], true
	}
	return spType[:size], true
}
