package fov

import (
	"math/rand"
	"testing"
)

// Mirrors the historical benchmark setup: a 45×45 map with 10 random walls
// and the eye at the center.
func benchmarkMap(width, height, walls int) *sampleMap {
	m := newSampleMap(width, height)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < walls; i++ {
		m.setTransparent(rng.Intn(width), rng.Intn(height), false)
	}
	m.setTransparent(width/2, height/2, true)
	return m
}

func BenchmarkFieldOfView(b *testing.B) {
	cases := []struct {
		name          string
		width, height int
		radius        int
		walls         int
	}{
		{"45x45_r12", 45, 45, 12, 10},
		{"45x45_r24", 45, 45, 24, 10},
		{"200x200_r12", 200, 200, 12, 120},
		{"200x200_r60", 200, 200, 60, 120},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			m := benchmarkMap(c.width, c.height, c.walls)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				FieldOfView(m, c.width/2, c.height/2, c.radius, true)
			}
		})
	}
}
