package dirinfo

import "github.com/dustin/go-humanize"

// BucketWidth is the byte span of one size-histogram bin.
type BucketWidth uint64

// The two fixed histogram granularities. Callers needing a different
// width use BucketMB.
const (
	Bucket100KB BucketWidth = 100 * humanize.KiByte
	Bucket500KB BucketWidth = 500 * humanize.KiByte
)

// BucketMB returns a bucket width of n whole mebibytes.
func BucketMB(n uint64) BucketWidth {
	return BucketWidth(n * humanize.MiByte)
}

// normalize substitutes the default width for zero so that histogram
// queries stay total.
func (w BucketWidth) normalize() BucketWidth {
	if w == 0 {
		return Bucket100KB
	}

	return w
}
