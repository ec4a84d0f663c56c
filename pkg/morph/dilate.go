package morph

import "github.com/seung-lab/fastmorph/pkg/smallsort"

// dilateBlock runs multilabel dilation over [xs,xe) x [ys,ye) x [zs,ze).
//
// The engine slides a three-column window (left, middle, right of 3x3 faces)
// along x. stale counts how many of the rightmost columns must be
// refilled before the next decision: 1 shifts and refills only the leading
// column, 2 recycles the old right as the new left, >= 3 rebuilds the window.
//
// Two skip-ahead fast paths write the decision for (x+1) together with x:
// when |middle|+|right| >= 14 and both columns are uniform with the same
// label, or when the winning run of the sorted 27-neighborhood has length
// >= 23. Both bounds are sufficient conditions, not heuristics: a smaller
// count could be outvoted by labels entering through the next window's
// leading column. The pair-write stays inside the block so concurrent blocks
// never touch the same output cell; the neighbor block derives the identical
// value on its own.
func (v *vol[T]) dilateBlock(xs, xe, ys, ye, zs, ze int, backgroundOnly bool) {
	left := make([]T, 0, 9)
	middle := make([]T, 0, 9)
	right := make([]T, 0, 9)
	neighbors := make([]T, 0, 27)

	labels, output := v.labels, v.output
	sx, sy, sxy := v.sx, v.sy, v.sxy

	for z := zs; z < ze; z++ {
		for y := ys; y < ye; y++ {
			stale := 3
			for x := xs; x < xe; x++ {
				loc := x + sx*(y+sy*z)

				if backgroundOnly && labels[loc] != 0 {
					output[loc] = labels[loc]
					stale++
					continue
				}

				if z > zs && output[loc-sxy] == 0 {
					// The previous layer wrote nothing here, so every label
					// visible to (x,y,z-1) already failed to produce output.
					// Only the +z rows of the columns can change the decision.
					switch {
					case stale == 1:
						left, middle, right = middle, right, left
						right = v.gatherFront(x+1, y, z, right)
					case stale == 2:
						left, right = right, left
						middle = v.gatherFront(x, y, z, middle)
						right = v.gatherFront(x+1, y, z, right)
					default:
						left = v.gatherFront(x-1, y, z, left)
						middle = v.gatherFront(x, y, z, middle)
						right = v.gatherFront(x+1, y, z, right)
					}
				} else {
					switch {
					case stale == 1:
						left, middle, right = middle, right, left
						right = v.gather(x+1, y, z, right)
					case stale == 2:
						left, right = right, left
						middle = v.gather(x, y, z, middle)
						right = v.gather(x+1, y, z, right)
					default:
						left = v.gather(x-1, y, z, left)
						middle = v.gather(x, y, z, middle)
						right = v.gather(x+1, y, z, right)
					}
				}

				stale = 0

				if len(left)+len(middle)+len(right) == 0 {
					stale = 1
					continue
				}

				smallsort.Sort(middle)
				smallsort.Sort(right)

				if len(right)+len(middle) >= 14 &&
					right[0] == right[len(right)-1] &&
					middle[0] == middle[len(middle)-1] &&
					right[0] == middle[0] {

					output[loc] = right[0]
					if x < xe-1 {
						output[loc+1] = right[0]
						stale = 2
						x++
					} else {
						stale = 1
					}
					continue
				}

				neighbors = neighbors[:0]
				neighbors = append(neighbors, left...)
				neighbors = append(neighbors, middle...)
				neighbors = append(neighbors, right...)

				smallsort.Sort(neighbors)

				size := len(neighbors)

				// The middle and right columns become the next left and
				// middle, so a uniform window this large also decides (x+1).
				if neighbors[0] == neighbors[size-1] {
					output[loc] = neighbors[0]
					if size >= 23 && x < xe-1 {
						output[loc+1] = neighbors[0]
						stale = 2
						x++
					} else {
						stale = 1
					}
					continue
				}

				modeLabel := neighbors[0]
				ct := 1
				maxCt := 1
				for i := 1; i < size; i++ {
					if neighbors[i] != neighbors[i-1] {
						if ct > maxCt {
							modeLabel = neighbors[i-1]
							maxCt = ct
						}
						ct = 1
						if size-i < maxCt {
							break
						}
					} else {
						ct++
					}
				}
				if ct > maxCt {
					modeLabel = neighbors[size-1]
					maxCt = ct
				}

				output[loc] = modeLabel

				if maxCt >= 23 && x < xe-1 {
					output[loc+1] = modeLabel
					stale = 2
					x++
					continue
				}

				stale = 1
			}
		}
	}
}
