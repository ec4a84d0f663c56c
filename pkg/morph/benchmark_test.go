package morph

import (
	"math/rand"
	"testing"
)

func benchVolume(n int, span int) []uint32 {
	rng := rand.New(rand.NewSource(1))
	labels := make([]uint32, n*n*n)
	for i := range labels {
		labels[i] = uint32(rng.Intn(span))
	}
	return labels
}

func BenchmarkMultilabelDilate(b *testing.B) {
	const n = 64
	labels := benchVolume(n, 6)
	out := make([]uint32, len(labels))
	b.SetBytes(int64(len(labels) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(out)
		if err := MultilabelDilate(labels, out, n, n, n, false, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMultilabelDilateBackgroundOnly(b *testing.B) {
	const n = 64
	labels := benchVolume(n, 6)
	out := make([]uint32, len(labels))
	b.SetBytes(int64(len(labels) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(out)
		if err := MultilabelDilate(labels, out, n, n, n, true, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMultilabelErode(b *testing.B) {
	const n = 64
	labels := benchVolume(n, 2)
	out := make([]uint32, len(labels))
	b.SetBytes(int64(len(labels) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(out)
		if err := MultilabelErode(labels, out, n, n, n, true, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreyDilate(b *testing.B) {
	const n = 64
	labels := benchVolume(n, 1 << 16)
	out := make([]uint32, len(labels))
	b.SetBytes(int64(len(labels) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := GreyDilate(labels, out, n, n, n, 1); err != nil {
			b.Fatal(err)
		}
	}
}
