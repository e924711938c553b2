// Package pagereplace counts page faults produced by a reference
// string under the classic replacement policies: FIFO, LRU and the
// clairvoyant optimal policy. Each simulation starts from empty frames
// and reports the total number of faults, compulsory misses included.
package pagereplace

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCapacity signals a frame capacity no simulation can run
// with.
var ErrInvalidCapacity = errors.New("invalid capacity")

// FIFO evicts the page that has been resident the longest, regardless
// of use.
func FIFO(capacity int, refs []int64) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	var (
		faults int
		oldest int
		frames = make([]int64, 0, capacity)
	)
	for _, ref := range refs {
		if frameIndex(frames, ref) >= 0 {
			continue
		}
		faults++
		if len(frames) < capacity {
			frames = append(frames, ref)
			continue
		}
		frames[oldest] = ref
		oldest = (oldest + 1) % capacity
	}
	return faults, nil
}

// LRU evicts the page whose last use lies farthest in the past. A hit
// refreshes the page's recency.
func LRU(capacity int, refs []int64) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	var (
		faults int
		frames = make([]int64, 0, capacity)
	)
	for _, ref := range refs {
		if i := frameIndex(frames, ref); i >= 0 {
			frames = append(frames[:i], frames[i+1:]...)
			frames = append(frames, ref)
			continue
		}
		faults++
		if len(frames) == capacity {
			copy(frames, frames[1:])
			frames = frames[:capacity-1]
		}
		frames = append(frames, ref)
	}
	return faults, nil
}

// Optimal evicts the page whose next use lies farthest in the future,
// preferring pages never used again. Ties fall to the lowest frame, so
// runs are deterministic.
func Optimal(capacity int, refs []int64) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	var (
		faults int
		frames = make([]int64, 0, capacity)
	)
	for pos, ref := range refs {
		if frameIndex(frames, ref) >= 0 {
			continue
		}
		faults++
		if len(frames) < capacity {
			frames = append(frames, ref)
			continue
		}

		victim, farthest := 0, -1
		for i := range frames {
			use := nextUse(refs, pos, frames[i])
			if use > farthest {
				victim, farthest = i, use
			}
		}
		frames[victim] = ref
	}
	return faults, nil
}

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d frames", ErrInvalidCapacity, capacity)
	}
	return nil
}

func frameIndex(frames []int64, ref int64) int {
	for i := range frames {
		if frames[i] == ref {
			return i
		}
	}
	return -1
}

// nextUse is the position of the first use of page past pos, or
// math.MaxInt when the page is never used again.
func nextUse(refs []int64, pos int, page int64) int {
	for i := pos + 1; i < len(refs); i++ {
		if refs[i] == page {
			return i
		}
	}
	return math.MaxInt
}
