package refresher

import "time"

// batchTuner adapts batch size and inter-batch delay to observed success rate
// and latency.
type batchTuner struct {
	size  int
	delay time.Duration
}

func newBatchTuner(total int) *batchTuner {
	t := &batchTuner{size: initialBatchSize, delay: initialBatchDelay}
	if total > largeAddressSet {
		if scaled := total / addressesPerBatch; scaled > t.size {
			t.size = scaled
		}
		t.delay /= 2
	}
	t.clamp()
	return t
}

// observe feeds one batch outcome and returns its success rate.
func (t *batchTuner) observe(succeeded, attempted int, latency time.Duration) float64 {
	if attempted <= 0 {
		return 0
	}
	rate := float64(succeeded) / float64(attempted)

	switch {
	case rate >= 0.9 && latency <= goodLatency:
		step := t.size / 4
		if step < 1 {
			step = 1
		}
		t.size += step
		t.delay = t.delay * 3 / 4
	case rate < 0.7 || latency > poorLatency:
		t.size /= 2
		t.delay = t.delay * 3 / 2
	case rate >= 0.8 && latency <= (goodLatency+poorLatency)/2:
		t.size++
	default:
		t.size--
	}
	t.clamp()
	return rate
}

func (t *batchTuner) clamp() {
	t.size = min(max(t.size, minBatchSize), maxBatchSize)
	t.delay = min(max(t.delay, minBatchDelay), maxBatchDelay)
}
