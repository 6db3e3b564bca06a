package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockCount(m Matrix) int {
	n := 0
	for _, row := range m {
		for _, label := range row {
			if label != ShapeNone {
				n++
			}
		}
	}
	return n
}

func TestCatalogShapes(t *testing.T) {
	require.Len(t, Shapes, 7)

	for _, shape := range Shapes {
		def := Definition(shape)
		assert.Equal(t, shape, def.Shape)
		assert.Equal(t, 4, blockCount(def.Matrix), "shape %s", shape)

		for _, row := range def.Matrix {
			assert.Len(t, row, def.Matrix.Size(), "shape %s matrix must be square", shape)
			for _, label := range row {
				assert.Contains(t, []Shape{ShapeNone, shape}, label)
			}
		}
	}

	assert.Equal(t, ShapeNone, Definition(Shape(42)).Shape)
}

func TestFourRotationsRestoreOrientation(t *testing.T) {
	for _, shape := range Shapes {
		base := Definition(shape).Matrix
		for _, dir := range []Direction{Clockwise, CounterClockwise} {
			m := base
			for range 4 {
				m = RotateMatrix(m, dir)
			}
			assert.True(t, m.Equal(base), "shape %s dir %d", shape, dir)
		}
	}
}

func TestCounterClockwiseIsThreeClockwise(t *testing.T) {
	for _, shape := range Shapes {
		base := Definition(shape).Matrix
		ccw := RotateMatrix(base, CounterClockwise)
		cw3 := orient(base, 3)
		assert.True(t, ccw.Equal(cw3), "shape %s", shape)
	}
}

func TestRotateMatrixClockwise(t *testing.T) {
	got := RotateMatrix(Definition(ShapeT).Matrix, Clockwise)
	want := grid(ShapeT,
		".#.",
		"##.",
		".#.",
	)
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestRotateMatrixLeavesInputUntouched(t *testing.T) {
	base := Definition(ShapeL).Matrix
	before := grid(ShapeL,
		".#.",
		".#.",
		".##",
	)

	RotateMatrix(base, Clockwise)
	RotateMatrix(base, CounterClockwise)

	assert.True(t, base.Equal(before))
}

func TestRandomShapeIsUniformish(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Shape]int)
	for range 7000 {
		seen[RandomShape(rng)]++
	}

	require.Len(t, seen, 7)
	for shape, n := range seen {
		assert.InDelta(t, 1000, n, 200, "shape %s", shape)
	}
}
