package engine

import (
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// EXECUTOR — Classification pipeline
// ============================================================================
// Entry point: Analyze(view, opts...)
//
// Pipeline:
//   1. Count luminosity classes
//   2. (Optional) Count spectral types
//   3. Bucket (B-V, Mv) pairs per luminosity class
//   4. Build tables + HR diagram config
//
// Pure computation: the same view always yields the same Result.
// ============================================================================

// Analyze classifies every star in the view and returns render-ready output.
func Analyze(view RecordView, opts ...Option) (*Result, error) {
	if view == nil {
		return nil, ErrNilView
	}
	cfg := applyOptions(opts)

	log.WithField("stars", view.Len()).Debug("🔧 classifying stars")

	codes := LuminosityCodes(view)
	lumCounts := CountLuminosityClasses(codes)
	buckets := BucketByLuminosityClass(view)

	result := &Result{
		Stars:            view.Len(),
		LuminosityCounts: lumCounts,
		LuminosityTable:  BuildLuminosityTable(countBuckets(LuminosityClasses, lumCounts)),
		Buckets:          buckets,
		Diagram:          BuildHRDiagram(buckets, cfg.Title),
		Summary:          BuildSummary(view.Len(), buckets),
	}

	if cfg.SpectralTypes {
		spBuckets := SpectralBuckets(view)
		counts := make([]int, len(spBuckets))
		for i, b := range spBuckets {
			counts[i] = b.Count
		}
		result.SpectralCounts = counts
		result.SpectralTable = BuildSpectralTable(spBuckets)
	}

	if excluded := view.Len() - TotalCount(buckets); excluded > 0 {
		log.WithField("excluded", excluded).Debug("stars with unrecognised luminosity class skipped")
	}

	return result, nil
}
