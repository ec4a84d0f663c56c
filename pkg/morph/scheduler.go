package morph

import "sync"

// Block sides: cubes for volumes with z extent, squares for single-slice
// volumes. Sized so a block's working set stays cache-resident while keeping
// enough blocks to feed the pool.
const (
	blockSize3D = 64
	blockSize2D = 512
)

// blockRange is one scheduled unit of work: a half-open axis-aligned region
// of the output volume.
type blockRange struct {
	xs, xe int
	ys, ye int
	zs, ze int
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// forEachBlock partitions the volume into blocks, insets the processed region
// by ofs voxels on each axis that has extent (erosion cannot succeed where
// the stencil leaves the volume), and runs task over every nonempty block on
// a fixed pool of workers. threads <= 1 runs synchronously on the caller.
// Workers write to disjoint output regions, so the only synchronization is
// the join before return.
func forEachBlock(sx, sy, sz, ofs, threads int, task func(blockRange)) {
	bs := blockSize3D
	if sz == 1 {
		bs = blockSize2D
	}

	gx := ceilDiv(sx, bs)
	gy := ceilDiv(sy, bs)
	gz := ceilDiv(sz, bs)

	ofsX, ofsY, ofsZ := ofs, ofs, ofs
	if sz == 1 {
		// Single-slice volumes have no z extent to inset.
		ofsZ = 0
	}

	blocks := make([]blockRange, 0, gx*gy*gz)
	for bz := 0; bz < gz; bz++ {
		for by := 0; by < gy; by++ {
			for bx := 0; bx < gx; bx++ {
				r := blockRange{
					xs: max(ofsX, bx*bs), xe: min((bx+1)*bs, sx-ofsX),
					ys: max(ofsY, by*bs), ye: min((by+1)*bs, sy-ofsY),
					zs: max(ofsZ, bz*bs), ze: min((bz+1)*bs, sz-ofsZ),
				}
				if r.xs >= r.xe || r.ys >= r.ye || r.zs >= r.ze {
					continue
				}
				blocks = append(blocks, r)
			}
		}
	}

	workers := min(threads, len(blocks))
	if workers <= 1 {
		for _, r := range blocks {
			task(r)
		}
		return
	}

	queue := make(chan blockRange, len(blocks))
	for _, r := range blocks {
		queue <- r
	}
	close(queue)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range queue {
				task(r)
			}
		}()
	}
	wg.Wait()
}
