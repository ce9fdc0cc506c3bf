package moon

import "math"

// BucketAll is the bucket label that matches every phase.
const BucketAll = "All"

// BucketStep is the slider width of one bucket. The slider runs 0-100 and
// nine labels share it, so the final label only starts at 100.
const BucketStep = 12.5

var bucketLabels = []string{
	BucketAll,
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

func BucketLabels() []string {
	return append([]string(nil), bucketLabels...)
}

// ResolveBucket maps a slider value to its bucket label using
// floor(v / BucketStep). Anything that lands outside the label list,
// including NaN and negative values, resolves to BucketAll.
func ResolveBucket(v float64) string {
	idx := math.Floor(v / BucketStep)
	if math.IsNaN(idx) || idx < 0 || idx >= float64(len(bucketLabels)) {
		return BucketAll
	}
	return bucketLabels[int(idx)]
}

// BucketIndex returns the position of label in the bucket list, or -1.
func BucketIndex(label string) int {
	for i, l := range bucketLabels {
		if l == label {
			return i
		}
	}
	return -1
}

// BucketValue is the slider value that selects label. Unknown labels select
// BucketAll.
func BucketValue(label string) float64 {
	idx := BucketIndex(label)
	if idx < 0 {
		return 0
	}
	return float64(idx) * BucketStep
}
