package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/mep/internal/renderer"
)

// painted returns the set of coordinates holding c.
func painted(pb *PixelBuffer, c renderer.Color) map[[2]int]bool {
	w, h := pb.Size()
	out := make(map[[2]int]bool)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got, _ := pb.Read(x, y); got == c {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestDrawLineHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 int
	}{
		{"left to right", 1, 6},
		{"right to left", 6, 1},
		{"single", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewPixelBuffer(10, 3)
			pb.DrawLine(tt.x1, 1, tt.x2, 1, renderer.ColorGreen)

			got := painted(pb, renderer.ColorGreen)
			want := abs(tt.x2-tt.x1) + 1
			assert.Len(t, got, want)
			assert.True(t, got[[2]int{tt.x1, 1}])
			assert.True(t, got[[2]int{tt.x2, 1}])
		})
	}
}

func TestDrawLineVertical(t *testing.T) {
	pb := NewPixelBuffer(3, 10)
	pb.DrawLine(1, 8, 1, 2, renderer.ColorRed)

	got := painted(pb, renderer.ColorRed)
	assert.Len(t, got, 7)
	for y := 2; y <= 8; y++ {
		assert.True(t, got[[2]int{1, y}], "missing (1, %d)", y)
	}
}

func TestDrawLineEndpointsAndContinuity(t *testing.T) {
	lines := [][4]int{
		{0, 0, 7, 3},
		{7, 3, 0, 0},
		{0, 7, 3, 0},
		{2, 1, 5, 8},
		{6, 6, 0, 2},
		{0, 0, 7, 7},
	}

	for _, l := range lines {
		pb := NewPixelBuffer(8, 9)
		pb.DrawLine(l[0], l[1], l[2], l[3], renderer.ColorWhite)
		got := painted(pb, renderer.ColorWhite)

		assert.True(t, got[[2]int{l[0], l[1]}], "line %v misses start", l)
		assert.True(t, got[[2]int{l[2], l[3]}], "line %v misses end", l)

		// One pixel per step along the major axis
		major := max(abs(l[2]-l[0]), abs(l[3]-l[1]))
		assert.Len(t, got, major+1, "line %v", l)

		// Every pixel except the endpoints has a painted 8-neighbour on each side
		for p := range got {
			neighbours := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && got[[2]int{p[0] + dx, p[1] + dy}] {
						neighbours++
					}
				}
			}
			assert.GreaterOrEqual(t, neighbours, 1, "line %v pixel %v is isolated", l, p)
		}
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	pb := NewPixelBuffer(4, 4)
	pb.DrawLine(2, 2, 2, 2, renderer.ColorBlue)

	got := painted(pb, renderer.ColorBlue)
	assert.Equal(t, map[[2]int]bool{{2, 2}: true}, got)
}

func TestDrawLineClipped(t *testing.T) {
	pb := NewPixelBuffer(4, 1)
	pb.DrawLine(-3, 0, 10, 0, renderer.ColorRed)

	got := painted(pb, renderer.ColorRed)
	assert.Len(t, got, 4)
}

func TestDrawLineStepsMinorAxisOnce(t *testing.T) {
	pb := NewPixelBuffer(4, 2)
	pb.DrawLine(0, 0, 3, 1, renderer.ColorRed)

	got := painted(pb, renderer.ColorRed)
	assert.Equal(t, map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 1}: true, {3, 1}: true,
	}, got)
}

func TestDrawRect(t *testing.T) {
	pb := NewPixelBuffer(8, 6)
	pb.DrawRect(1, 1, 5, 4, renderer.ColorYellow)

	got := painted(pb, renderer.ColorYellow)
	// Perimeter of a 5x4 outline
	assert.Len(t, got, 2*5+2*4-4)
	for x := 1; x <= 5; x++ {
		assert.True(t, got[[2]int{x, 1}], "top edge at %d", x)
		assert.True(t, got[[2]int{x, 4}], "bottom edge at %d", x)
	}
	for y := 1; y <= 4; y++ {
		assert.True(t, got[[2]int{1, y}], "left edge at %d", y)
		assert.True(t, got[[2]int{5, y}], "right edge at %d", y)
	}
	// Interior untouched
	assert.False(t, got[[2]int{3, 2}])
}

func TestDrawRectDegenerate(t *testing.T) {
	pb := NewPixelBuffer(5, 5)

	pb.DrawRect(1, 1, 0, 3, renderer.ColorRed)
	pb.DrawRect(1, 1, 3, -1, renderer.ColorRed)
	assert.Empty(t, painted(pb, renderer.ColorRed))

	pb.DrawRect(1, 2, 3, 1, renderer.ColorRed)
	assert.Len(t, painted(pb, renderer.ColorRed), 3)
}

func TestDrawRectClipped(t *testing.T) {
	pb := NewPixelBuffer(4, 4)
	pb.DrawRect(-1, -1, 4, 4, renderer.ColorRed)

	got := painted(pb, renderer.ColorRed)
	// Only the right and bottom edges fall inside
	for i := 0; i <= 2; i++ {
		assert.True(t, got[[2]int{2, i}])
		assert.True(t, got[[2]int{i, 2}])
	}
	assert.Len(t, got, 5)
}

func TestFillRect(t *testing.T) {
	pb := NewPixelBuffer(10, 8)
	require.NoError(t, pb.Write(0, 0, renderer.ColorBlue))

	pb.FillRect(3, 2, 4, 3, renderer.ColorRed)

	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			c, err := pb.Read(x, y)
			require.NoError(t, err)
			inside := x >= 3 && x < 7 && y >= 2 && y < 5
			switch {
			case inside:
				assert.Equal(t, renderer.ColorRed, c, "(%d, %d)", x, y)
			case x == 0 && y == 0:
				assert.Equal(t, renderer.ColorBlue, c)
			default:
				assert.Equal(t, renderer.Transparent, c, "(%d, %d)", x, y)
			}
		}
	}
}

func TestFillRectClippedAndEmpty(t *testing.T) {
	pb := NewPixelBuffer(4, 4)

	pb.FillRect(2, 2, 10, 10, renderer.ColorRed)
	assert.Len(t, painted(pb, renderer.ColorRed), 4)

	pb.FillRect(-5, -5, 6, 6, renderer.ColorGreen)
	assert.Len(t, painted(pb, renderer.ColorGreen), 1)

	pb.FillRect(0, 0, 0, 4, renderer.ColorBlue)
	pb.FillRect(10, 10, 2, 2, renderer.ColorBlue)
	assert.Empty(t, painted(pb, renderer.ColorBlue))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
