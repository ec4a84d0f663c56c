package morph

// greyDilateBlock runs grayscale dilation (neighborhood max) over the block.
//
// The window state is the max of each column's face. The type maximum plays
// the role impurity plays in erosion: a column holding tmax decides every
// window containing it, so the engine writes the covered voxels and skips
// ahead. Unlike the multilabel kernels every in-range voxel gets written.
func (v *vol[T]) greyDilateBlock(xs, xe, ys, ye, zs, ze int) {
	tmin, tmax := typeLimits[T]()

	labels, output := v.labels, v.output
	sx, sy := v.sx, v.sy

	var maxLeft, maxMiddle, maxRight T

	for z := zs; z < ze; z++ {
		for y := ys; y < ye; y++ {
			stale := 3
			for x := xs; x < xe; x++ {
				loc := x + sx*(y+sy*z)

				if labels[loc] == tmax {
					// The center saturates its own window and the next one.
					output[loc] = tmax
					if x < xe-1 {
						output[loc+1] = tmax
					}
					x++
					stale += 2
					continue
				}

				switch {
				case stale == 1:
					maxLeft = maxMiddle
					maxMiddle = maxRight
					maxRight = v.colMax(x+1, y, z, tmin)
				case stale == 2:
					maxLeft = maxRight
					maxRight = v.colMax(x+1, y, z, tmin)
					if maxRight == tmax {
						v.writeRun(loc, x, xe, 3, tmax)
						x += 2
						stale = 3
						continue
					}
					maxMiddle = v.colMax(x, y, z, tmin)
				default:
					maxRight = v.colMax(x+1, y, z, tmin)
					if maxRight == tmax {
						v.writeRun(loc, x, xe, 3, tmax)
						x += 2
						stale = 3
						continue
					}
					maxMiddle = v.colMax(x, y, z, tmin)
					if maxMiddle == tmax {
						v.writeRun(loc, x, xe, 2, tmax)
						x++
						stale = 2
						continue
					}
					maxLeft = v.colMax(x-1, y, z, tmin)
				}

				if maxRight == tmax {
					v.writeRun(loc, x, xe, 3, tmax)
					x += 2
					stale = 3
					continue
				}
				if maxMiddle == tmax {
					v.writeRun(loc, x, xe, 2, tmax)
					x++
					stale = 2
					continue
				}

				output[loc] = max(maxLeft, maxMiddle, maxRight)
				stale = 1
			}
		}
	}
}

// greyErodeBlock runs grayscale erosion (neighborhood min); tmin and tmax
// swap roles relative to dilation.
func (v *vol[T]) greyErodeBlock(xs, xe, ys, ye, zs, ze int) {
	tmin, tmax := typeLimits[T]()

	labels, output := v.labels, v.output
	sx, sy := v.sx, v.sy

	var minLeft, minMiddle, minRight T

	for z := zs; z < ze; z++ {
		for y := ys; y < ye; y++ {
			stale := 3
			for x := xs; x < xe; x++ {
				loc := x + sx*(y+sy*z)

				if labels[loc] == tmin {
					output[loc] = tmin
					if x < xe-1 {
						output[loc+1] = tmin
					}
					x++
					stale += 2
					continue
				}

				switch {
				case stale == 1:
					minLeft = minMiddle
					minMiddle = minRight
					minRight = v.colMin(x+1, y, z, tmax)
				case stale == 2:
					minLeft = minRight
					minRight = v.colMin(x+1, y, z, tmax)
					if minRight == tmin {
						v.writeRun(loc, x, xe, 3, tmin)
						x += 2
						stale = 3
						continue
					}
					minMiddle = v.colMin(x, y, z, tmax)
				default:
					minRight = v.colMin(x+1, y, z, tmax)
					if minRight == tmin {
						v.writeRun(loc, x, xe, 3, tmin)
						x += 2
						stale = 3
						continue
					}
					minMiddle = v.colMin(x, y, z, tmax)
					if minMiddle == tmin {
						v.writeRun(loc, x, xe, 2, tmin)
						x++
						stale = 2
						continue
					}
					minLeft = v.colMin(x-1, y, z, tmax)
				}

				if minRight == tmin {
					v.writeRun(loc, x, xe, 3, tmin)
					x += 2
					stale = 3
					continue
				}
				if minMiddle == tmin {
					v.writeRun(loc, x, xe, 2, tmin)
					x++
					stale = 2
					continue
				}

				output[loc] = min(minLeft, minMiddle, minRight)
				stale = 1
			}
		}
	}
}

// writeRun stores val at x..x+n-1, clamped to the block's x range.
func (v *vol[T]) writeRun(loc, x, xe, n int, val T) {
	for i := 0; i < n && x+i < xe; i++ {
		v.output[loc+i] = val
	}
}
