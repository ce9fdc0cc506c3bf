package almanac

import (
	"strings"

	"github.com/andareed/astrodash/moon"
)

// Matches reports whether r passes both the search term and the phase bucket.
//
// The term is matched case-insensitively as a substring of the date or the
// phase name. The bucket matches when it is moon.BucketAll or a substring
// of the phase name (case-sensitive).
func Matches(r Record, term, bucket string) bool {
	return matchesTerm(r, strings.ToLower(term)) && matchesBucket(r, bucket)
}

func matchesTerm(r Record, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(r.Date), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Phase.String()), lowerTerm)
}

func matchesBucket(r Record, bucket string) bool {
	return bucket == moon.BucketAll || strings.Contains(r.Phase.String(), bucket)
}

// Filter returns the records that match term and bucket, in their original
// order. The returned slice never shares storage with records.
func Filter(records []Record, term, bucket string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, term, bucket) {
			out = append(out, r)
		}
	}
	return out
}
