package morph

// erodeBlock runs multilabel erosion over [xs,xe) x [ys,ye) x [zs,ze).
//
// The window state is three purity values: the label of each column iff that
// column's face neighborhood is uniformly the column center's label. A voxel
// survives only when all three purities agree on its own label, so a single
// impure column dooms every window containing it; the engine exploits this by
// skipping two voxels when the leading column is impure and one when the
// middle is.
//
// borderAgree selects the erode_border=false policy: out-of-range neighbors
// are treated as agreeing with the center instead of eroding it.
func (v *vol[T]) erodeBlock(xs, xe, ys, ye, zs, ze int, borderAgree bool) {
	labels, output := v.labels, v.output
	sx, sy, sxy := v.sx, v.sy, v.sxy

	var pureLeft, pureMiddle, pureRight T

	for z := zs; z < ze; z++ {
		for y := ys; y < ye; y++ {
			stale := 3
			for x := xs; x < xe; x++ {
				loc := x + sx*(y+sy*z)

				c := labels[loc]
				if c == 0 {
					x++
					stale += 2
					continue
				}

				// When the adjacent already-written output cell carries this
				// label, its full window was pure, which covers everything
				// but the leading face of each column.
				kind := pureFull
				if v.sz > 1 && z > zs && output[loc-sxy] == c {
					kind = pureFastZ
				} else if y > ys && output[loc-sx] == c {
					kind = pureFastY
				}

				switch {
				case stale == 1:
					pureLeft = pureMiddle
					pureMiddle = pureRight
					pureRight = v.isPure(kind, x+1, y, z, borderAgree, c)
				case stale == 2:
					pureLeft = pureRight
					pureRight = v.isPure(kind, x+1, y, z, borderAgree, c)
					if pureRight == 0 {
						x += 2
						stale = 3
						continue
					}
					pureMiddle = v.isPure(kind, x, y, z, borderAgree, c)
				default:
					pureRight = v.isPure(kind, x+1, y, z, borderAgree, c)
					if pureRight == 0 {
						x += 2
						stale = 3
						continue
					}
					pureMiddle = v.isPure(kind, x, y, z, borderAgree, c)
					if pureMiddle == 0 {
						x++
						stale = 2
						continue
					}
					pureLeft = v.isPure(kind, x-1, y, z, borderAgree, c)
				}

				stale = 0

				if pureRight == 0 {
					x += 2
					stale = 3
					continue
				}
				if pureMiddle == 0 {
					x++
					stale = 2
					continue
				}
				if pureLeft == pureMiddle && pureMiddle == pureRight {
					output[loc] = c
				}

				stale = 1
			}
		}
	}
}
