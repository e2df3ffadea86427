package query

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GroupCount counts records per key. Only keys present in records appear
// in the result; an empty input yields an empty, non-nil map.
func GroupCount[T any, K comparable](records []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, r := range records {
		out[key(r)]++
	}
	return out
}

// Count returns how many records satisfy fn.
func Count[T any](records []T, fn func(T) bool) int {
	n := 0
	for _, r := range records {
		if fn(r) {
			n++
		}
	}
	return n
}

func Sum[T any](records []T, value func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += value(r)
	}
	return total
}

func SumDecimal[T any](records []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(value(r))
	}
	return total
}

// Average returns the mean of value over records, rounded to 2 places,
// or 0 for an empty input.
func Average[T any](records []T, value func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Round(Sum(records, value)/float64(len(records)), 2)
}

// Rate returns count/total as a percentage rounded to one decimal place.
// A non-positive total yields 0.
func Rate(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round(float64(count)/float64(total)*100, 1)
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// BucketCount is one point of a time series.
type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// DateBuckets returns n consecutive YYYY-MM-DD days ending at end, oldest
// first.
func DateBuckets(end time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = end.AddDate(0, 0, i-(n-1)).Format(DateLayout)
	}
	return out
}

// CountByBuckets emits one count per caller-supplied bucket, in bucket
// order, including zeros. Records are attributed with bucketOf and only
// those satisfying match (when non-nil) are counted.
func CountByBuckets[T any](records []T, buckets []string, bucketOf func(T) string, match Predicate[T]) []BucketCount {
	counts := make(map[string]int, len(buckets))
	for _, r := range records {
		if match != nil && !match(r) {
			continue
		}
		counts[bucketOf(r)]++
	}

	out := make([]BucketCount, len(buckets))
	for i, b := range buckets {
		out[i] = BucketCount{Bucket: b, Count: counts[b]}
	}
	return out
}

// Latest returns the first n records after a stable sort by less, leaving
// records untouched.
func Latest[T any](records []T, n int, less func(a, b T) bool) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
