package morph

import "golang.org/x/exp/constraints"

// vol bundles the input and output buffers with the volume geometry for one
// kernel invocation. Elements are laid out x-fastest: loc = x + sx*(y + sy*z).
type vol[T constraints.Integer] struct {
	labels []T
	output []T
	sx     int
	sy     int
	sz     int
	sxy    int
}

func newVol[T constraints.Integer](labels, output []T, sx, sy, sz int) *vol[T] {
	return &vol[T]{
		labels: labels,
		output: output,
		sx:     sx,
		sy:     sy,
		sz:     sz,
		sxy:    sx * sy,
	}
}

func (v *vol[T]) loc(x, y, z int) int {
	return x + v.sx*(y+v.sy*z)
}

// gather clears dst and appends every nonzero label in the 3x3 (y,z) face of
// column x centered at (x,y,z). Out-of-range positions are skipped, so a
// volume with sz = 1 yields at most the three in-plane labels. An
// out-of-range column produces an empty result.
func (v *vol[T]) gather(x, y, z int, dst []T) []T {
	dst = dst[:0]

	if x < 0 || x >= v.sx {
		return dst
	}

	l := v.labels
	sx, sxy := v.sx, v.sxy
	loc := v.loc(x, y, z)

	if l[loc] != 0 {
		dst = append(dst, l[loc])
	}
	if y > 0 && l[loc-sx] != 0 {
		dst = append(dst, l[loc-sx])
	}
	if y < v.sy-1 && l[loc+sx] != 0 {
		dst = append(dst, l[loc+sx])
	}
	if z > 0 && l[loc-sxy] != 0 {
		dst = append(dst, l[loc-sxy])
	}
	if z < v.sz-1 && l[loc+sxy] != 0 {
		dst = append(dst, l[loc+sxy])
	}
	if y > 0 && z > 0 && l[loc-sx-sxy] != 0 {
		dst = append(dst, l[loc-sx-sxy])
	}
	if y < v.sy-1 && z > 0 && l[loc+sx-sxy] != 0 {
		dst = append(dst, l[loc+sx-sxy])
	}
	if y > 0 && z < v.sz-1 && l[loc-sx+sxy] != 0 {
		dst = append(dst, l[loc-sx+sxy])
	}
	if y < v.sy-1 && z < v.sz-1 && l[loc+sx+sxy] != 0 {
		dst = append(dst, l[loc+sx+sxy])
	}

	return dst
}

// gatherFront is gather restricted to the +z row of the column face. It is
// valid only when the caller has established that the z <= 0 rows of this
// column cannot contribute to the decision (see the dilation layer-skip).
func (v *vol[T]) gatherFront(x, y, z int, dst []T) []T {
	dst = dst[:0]

	if x < 0 || x >= v.sx {
		return dst
	}
	if z >= v.sz-1 {
		return dst
	}

	l := v.labels
	sx, sxy := v.sx, v.sxy
	loc := v.loc(x, y, z)

	if l[loc+sxy] != 0 {
		dst = append(dst, l[loc+sxy])
	}
	if y > 0 && l[loc-sx+sxy] != 0 {
		dst = append(dst, l[loc-sx+sxy])
	}
	if y < v.sy-1 && l[loc+sx+sxy] != 0 {
		dst = append(dst, l[loc+sx+sxy])
	}

	return dst
}

// Purity probe variants. The fast variants check only the leading face of the
// column and are valid when the adjacent output cell named in the erosion
// engine already carries the center's label, which proves the trailing faces
// agreed on the previous step.
const (
	pureFull = iota
	pureFastZ
	pureFastY
)

// isPure reports the label at the center of column (x,y,z) if every in-range
// neighbor in the probe's face set equals it, else 0. With borderAgree false
// (erode the border), an out-of-range neighbor fails the test; with
// borderAgree true, out-of-range neighbors count as agreeing and an
// out-of-range column reports oob, the engine's current center label.
// Volumes with sz = 1 have no z extent and skip the z faces entirely.
func (v *vol[T]) isPure(kind int, x, y, z int, borderAgree bool, oob T) T {
	if x < 0 || x >= v.sx {
		if borderAgree {
			return oob
		}
		return 0
	}

	l := v.labels
	sx, sxy := v.sx, v.sxy
	loc := v.loc(x, y, z)
	c := l[loc]
	if c == 0 {
		return 0
	}

	switch kind {
	case pureFastZ:
		if z < v.sz-1 {
			if l[loc+sxy] != c {
				return 0
			}
			if y > 0 && l[loc-sx+sxy] != c {
				return 0
			}
			if y < v.sy-1 && l[loc+sx+sxy] != c {
				return 0
			}
			if !borderAgree && (y == 0 || y == v.sy-1) {
				return 0
			}
		} else if !borderAgree {
			return 0
		}
		return c

	case pureFastY:
		if y < v.sy-1 {
			if l[loc+sx] != c {
				return 0
			}
			if v.sz > 1 {
				if z > 0 && l[loc+sx-sxy] != c {
					return 0
				}
				if z < v.sz-1 && l[loc+sx+sxy] != c {
					return 0
				}
				if !borderAgree && (z == 0 || z == v.sz-1) {
					return 0
				}
			}
		} else if !borderAgree {
			return 0
		}
		return c

	default:
		if y > 0 && l[loc-sx] != c {
			return 0
		}
		if y < v.sy-1 && l[loc+sx] != c {
			return 0
		}
		if !borderAgree && (y == 0 || y == v.sy-1) {
			return 0
		}
		if v.sz > 1 {
			if z > 0 {
				if l[loc-sxy] != c {
					return 0
				}
				if y > 0 && l[loc-sx-sxy] != c {
					return 0
				}
				if y < v.sy-1 && l[loc+sx-sxy] != c {
					return 0
				}
			}
			if z < v.sz-1 {
				if l[loc+sxy] != c {
					return 0
				}
				if y > 0 && l[loc-sx+sxy] != c {
					return 0
				}
				if y < v.sy-1 && l[loc+sx+sxy] != c {
					return 0
				}
			}
			if !borderAgree && (z == 0 || z == v.sz-1) {
				return 0
			}
		}
		return c
	}
}

// colMax reduces the 3x3 (y,z) face of column x to its maximum, or tmin when
// the column is out of range so the reduction is a no-op for the caller.
func (v *vol[T]) colMax(x, y, z int, tmin T) T {
	if x < 0 || x >= v.sx {
		return tmin
	}

	l := v.labels
	sx, sxy := v.sx, v.sxy
	loc := v.loc(x, y, z)

	m := l[loc]
	if y > 0 {
		m = max(m, l[loc-sx])
	}
	if y < v.sy-1 {
		m = max(m, l[loc+sx])
	}
	if z > 0 {
		m = max(m, l[loc-sxy])
		if y > 0 {
			m = max(m, l[loc-sx-sxy])
		}
		if y < v.sy-1 {
			m = max(m, l[loc+sx-sxy])
		}
	}
	if z < v.sz-1 {
		m = max(m, l[loc+sxy])
		if y > 0 {
			m = max(m, l[loc-sx+sxy])
		}
		if y < v.sy-1 {
			m = max(m, l[loc+sx+sxy])
		}
	}
	return m
}

// colMin is the min-reduction twin of colMax; tmax is the identity.
func (v *vol[T]) colMin(x, y, z int, tmax T) T {
	if x < 0 || x >= v.sx {
		return tmax
	}

	l := v.labels
	sx, sxy := v.sx, v.sxy
	loc := v.loc(x, y, z)

	m := l[loc]
	if y > 0 {
		m = min(m, l[loc-sx])
	}
	if y < v.sy-1 {
		m = min(m, l[loc+sx])
	}
	if z > 0 {
		m = min(m, l[loc-sxy])
		if y > 0 {
			m = min(m, l[loc-sx-sxy])
		}
		if y < v.sy-1 {
			m = min(m, l[loc+sx-sxy])
		}
	}
	if z < v.sz-1 {
		m = min(m, l[loc+sxy])
		if y > 0 {
			m = min(m, l[loc-sx+sxy])
		}
		if y < v.sy-1 {
			m = min(m, l[loc+sx+sxy])
		}
	}
	return m
}
