package raycaster

// Interval is an inclusive pixel-row range [A,B].
type Interval struct {
	A, B int
}

// OpaqueRange tracks the set of framebuffer rows a column has already
// painted with opaque content, so nearer walls can clip and short-circuit
// farther ones in the same column. It lives for exactly one column.
type OpaqueRange struct {
	intervals []Interval
}

// Intervals returns the current disjoint, ascending-sorted interval list.
// Callers must not mutate the returned slice.
func (r *OpaqueRange) Intervals() []Interval {
	return r.intervals
}

// Insert adds [a,b] to the set, merging with any interval it touches or
// overlaps, including one that is merely adjacent (so [10,20] and [21,30]
// coalesce into [10,30]).
func (r *OpaqueRange) Insert(a, b int) {
	if a > b {
		a, b = b, a
	}
	n := len(r.intervals)
	i := 0
	for i < n && r.intervals[i].B < a-1 {
		i++
	}
	j := i
	for j < n && r.intervals[j].A <= b+1 {
		if r.intervals[j].A < a {
			a = r.intervals[j].A
		}
		if r.intervals[j].B > b {
			b = r.intervals[j].B
		}
		j++
	}
	merged := make([]Interval, 0, n-(j-i)+1)
	merged = append(merged, r.intervals[:i]...)
	merged = append(merged, Interval{a, b})
	merged = append(merged, r.intervals[j:]...)
	r.intervals = merged
}

// CoversBand reports whether a single interval spans the entire [top,bottom]
// band, letting the column renderer short-circuit further ray marching.
func (r *OpaqueRange) CoversBand(top, bottom int) bool {
	return len(r.intervals) == 1 && r.intervals[0].A <= top && r.intervals[0].B >= bottom
}

// ClipSpan subtracts every interval in the set from the inclusive row span
// [start,end], returning the remaining visible span plus any fully-contained
// exclusions inside it that a draw loop should jump over. visible is false
// when some interval fully covers [start,end].
func (r *OpaqueRange) ClipSpan(start, end int) (effStart, effEnd int, jumps []Interval, visible bool) {
	effStart, effEnd = start, end
	visible = true
	for _, iv := range r.intervals {
		inclStart := iv.A >= effStart && iv.A <= effEnd
		inclEnd := iv.B >= effStart && iv.B <= effEnd
		switch {
		case inclStart && inclEnd:
			jumps = append(jumps, iv)
		case inclStart:
			effEnd = iv.A
		case inclEnd:
			effStart = iv.B
		case iv.A <= effStart && iv.B >= effEnd:
			return effStart, effEnd, jumps, false
		}
	}
	return
}
