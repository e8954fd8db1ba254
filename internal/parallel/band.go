package parallel

// Band is a half-open range of frame rows [Y0, Y1) assigned to one worker.
// Bands produced by Bands are contiguous and disjoint, which is exactly the
// sharing rule the pack operations require for lock-free concurrent calls.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

// Bands splits height rows into at most n contiguous disjoint bands of
// near-equal size. When height < n fewer bands are returned, one row each.
// Returns nil if height or n is not positive.
func Bands(height, n int) []Band {
	if height <= 0 || n <= 0 {
		return nil
	}
	if n > height {
		n = height
	}

	base := height / n
	extra := height % n

	bands := make([]Band, 0, n)
	y := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, Band{Y0: y, Y1: y + size})
		y += size
	}
	return bands
}
