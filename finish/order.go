package finish

import (
	"github.com/npillmayer/rings"
)

// Sort orders polylines greedily to reduce pen-up travel: starting at the
// origin, it always continues with the polyline whose start is nearest to
// the current pen position. With allowFlip, a polyline may be reversed if
// its end is nearer. Ties are broken by input order, so the result is
// deterministic.
func Sort(lines rings.Polylines, allowFlip bool) rings.Polylines {
	remaining := make(rings.Polylines, 0, len(lines))
	remaining.Extend(lines)
	out := make(rings.Polylines, 0, len(remaining))
	pen := rings.Origin
	for len(remaining) > 0 {
		best, flip := 0, false
		bestd := -1.0
		for i, l := range remaining {
			if d := pen.Dist(l.Start()); bestd < 0 || d < bestd {
				best, flip, bestd = i, false, d
			}
			if allowFlip {
				if d := pen.Dist(l.End()); d < bestd {
					best, flip, bestd = i, true, d
				}
			}
		}
		next := remaining[best]
		if flip {
			next = next.Reversed()
		}
		out = append(out, next)
		pen = next.End()
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

// Merge joins polylines whose ends lie within tolerance of each other,
// reversing polylines where needed. Closed polylines are left alone.
func Merge(lines rings.Polylines, tolerance float64) rings.Polylines {
	var open rings.Polylines
	var out rings.Polylines
	for _, l := range lines {
		if len(l) == 0 {
			continue
		}
		if l.IsClosed() {
			out = append(out, l)
		} else {
			open = append(open, append(rings.Polyline(nil), l...))
		}
	}
	used := make([]bool, len(open))
	for i := range open {
		if used[i] {
			continue
		}
		used[i] = true
		cur := open[i]
		for {
			j, how := findJoin(cur, open, used, tolerance)
			if j < 0 {
				break
			}
			used[j] = true
			cur = join(cur, open[j], how)
		}
		out = append(out, cur)
	}
	tracer().Debugf("merged %d polylines into %d", len(lines), len(out))
	return out
}

type joinKind int

const (
	endToStart   joinKind = iota // cur + other
	endToEnd                     // cur + reversed(other)
	startToEnd                   // other + cur
	startToStart                 // reversed(other) + cur
)

func findJoin(cur rings.Polyline, open rings.Polylines, used []bool, tolerance float64) (int, joinKind) {
	for j, o := range open {
		if used[j] {
			continue
		}
		switch {
		case cur.End().Dist(o.Start()) <= tolerance:
			return j, endToStart
		case cur.End().Dist(o.End()) <= tolerance:
			return j, endToEnd
		case cur.Start().Dist(o.End()) <= tolerance:
			return j, startToEnd
		case cur.Start().Dist(o.Start()) <= tolerance:
			return j, startToStart
		}
	}
	return -1, endToStart
}

func join(cur, other rings.Polyline, how joinKind) rings.Polyline {
	switch how {
	case endToStart:
		return append(cur, other[1:]...)
	case endToEnd:
		return append(cur, other.Reversed()[1:]...)
	case startToEnd:
		return append(append(rings.Polyline(nil), other...), cur[1:]...)
	default:
		return append(other.Reversed(), cur[1:]...)
	}
}
