package fastqfilter

// ClipLowQualTail returns the length of qual after clipping its low-quality
// tail. qual is walked from the end; a base >= threshold extends the current
// high-quality run, and the walk stops once the run exceeds num bases. A base
// below threshold resets the run and clips everything from it to the end.
func ClipLowQualTail(qual string, threshold byte, num int) int {
	high := 0
	cut := len(qual) - 1
	for i := len(qual) - 1; i >= 0; i-- {
		if qual[i] >= threshold {
			high++
			if high > num {
				break
			}
		} else {
			high = 0
			cut = i - 1
		}
	}
	return cut + 1
}
