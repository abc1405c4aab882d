package osc

import (
	"strconv"
	"testing"
)

func BenchmarkOscillatorFill(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run("block_"+strconv.Itoa(size), func(b *testing.B) {
			g, err := New(1000, WithSampleRate(48000))
			if err != nil {
				b.Fatalf("New error: %v", err)
			}

			dst := make([]float64, size)

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				g.Fill(dst)
			}
		})
	}
}

func BenchmarkOscillatorFill32(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run("block_"+strconv.Itoa(size), func(b *testing.B) {
			g, err := New(1000, WithSampleRate(48000))
			if err != nil {
				b.Fatalf("New error: %v", err)
			}

			dst := make([]float32, size)

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				g.Fill32(dst)
			}
		})
	}
}
