package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazerunner/astar"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// BenchmarkAStar_Open runs A* across an open 100×100 grid.
func BenchmarkAStar_Open(b *testing.B) {
	g, _ := grid.New(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := astar.New(g, g.Start(), g.Goal())
		_, _ = search.Run(s, 0)
	}
}

// BenchmarkAStar_Random runs A* on a seeded maze with 25% walls.
func BenchmarkAStar_Random(b *testing.B) {
	g, _ := grid.Random(100, 100, rand.New(rand.NewSource(42)), 0.25)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := astar.New(g, g.Start(), g.Goal())
		_, _ = search.Run(s, 0)
	}
}
