package requestid

import (
	"testing"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	sinkID  ID
	sinkStr string
	sinkU64 uint64
)

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = Encode(uint64(i))
	}
}

func BenchmarkEncodeWide(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = EncodeWide(uint64(i))
	}
}

func BenchmarkEncodeMixed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = Encode(Mix(uint64(i)))
	}
}

func BenchmarkMix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkU64 = Mix(uint64(i))
	}
}

func BenchmarkGeneratorNext(b *testing.B) {
	g, _ := New(WidthNarrow, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkID = g.Next()
	}
}

func BenchmarkGeneratorNextMixed(b *testing.B) {
	g, _ := New(WidthNarrow, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkID = g.Next()
	}
}

func BenchmarkGeneratorNextWide(b *testing.B) {
	g, _ := New(WidthWide, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkID = g.Next()
	}
}

func BenchmarkGeneratorNextString(b *testing.B) {
	g, _ := New(WidthNarrow, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkStr = g.NextString()
	}
}

func BenchmarkGeneratorNextParallel(b *testing.B) {
	g, _ := New(WidthNarrow, false)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sinkID = g.Next()
		}
	})
}

// Baselines: the random-ID libraries this package is meant to outrun on
// request hot paths.

func BenchmarkBaselineNanoID6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := gonanoid.New(6)
		if err != nil {
			b.Fatal(err)
		}
		sinkStr = s
	}
}

func BenchmarkBaselineNanoID21(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := gonanoid.New()
		if err != nil {
			b.Fatal(err)
		}
		sinkStr = s
	}
}

func BenchmarkBaselineUUIDString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkStr = uuid.New().String()
	}
}
