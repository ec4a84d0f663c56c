package smallsort

import (
	"math/rand"
	"slices"
	"testing"
)

// TestSortAllLengths cross-checks every dispatch path, network and fallback,
// against the standard sort on duplicate-heavy inputs.
func TestSortAllLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n <= 40; n++ {
		for trial := 0; trial < 200; trial++ {
			got := make([]uint64, n)
			for i := range got {
				// Few distinct values so runs and ties are common, as in
				// real label neighborhoods.
				got[i] = uint64(rng.Intn(5))
			}
			want := slices.Clone(got)
			slices.Sort(want)

			Sort(got)

			if !slices.Equal(got, want) {
				t.Fatalf("Sort failed for n=%d: got %v, want %v", n, got, want)
			}
		}
	}
}

// TestSortWideValues exercises the networks with large, distinct values so a
// missing comparator cannot hide behind duplicates.
func TestSortWideValues(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{2, 3, 9, 12, 18, 26, 27} {
		for trial := 0; trial < 500; trial++ {
			got := make([]uint64, n)
			for i := range got {
				got[i] = rng.Uint64()
			}
			want := slices.Clone(got)
			slices.Sort(want)

			Sort(got)

			if !slices.Equal(got, want) {
				t.Fatalf("Sort failed for n=%d: got %v, want %v", n, got, want)
			}
		}
	}
}

// TestSortSigned checks that the networks order negative values correctly.
func TestSortSigned(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, n := range []int{3, 9, 18, 26, 27} {
		for trial := 0; trial < 200; trial++ {
			got := make([]int8, n)
			for i := range got {
				got[i] = int8(rng.Intn(256) - 128)
			}
			want := slices.Clone(got)
			slices.Sort(want)

			Sort(got)

			if !slices.Equal(got, want) {
				t.Fatalf("Sort failed for n=%d: got %v, want %v", n, got, want)
			}
		}
	}
}

// TestSortEdgeOrders covers already-sorted and reversed inputs for each
// network size.
func TestSortEdgeOrders(t *testing.T) {
	for n := 0; n <= 27; n++ {
		asc := make([]int, n)
		desc := make([]int, n)
		for i := 0; i < n; i++ {
			asc[i] = i
			desc[i] = n - 1 - i
		}

		got := slices.Clone(asc)
		Sort(got)
		if !slices.Equal(got, asc) {
			t.Errorf("Sort broke an already-sorted input of length %d: %v", n, got)
		}

		Sort(desc)
		if !slices.Equal(desc, asc) {
			t.Errorf("Sort failed on reversed input of length %d: %v", n, desc)
		}
	}
}

func BenchmarkSort9(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	data := make([][9]uint32, 1024)
	for i := range data {
		for j := range data[i] {
			data[i][j] = uint32(rng.Intn(8))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := data[i%len(data)]
		Sort(buf[:])
	}
}

func BenchmarkSort27(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	data := make([][27]uint32, 1024)
	for i := range data {
		for j := range data[i] {
			data[i][j] = uint32(rng.Intn(8))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := data[i%len(data)]
		Sort(buf[:])
	}
}
