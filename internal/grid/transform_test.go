package grid_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/grid"
)

func randomGrid(rng *rand.Rand, rows, cols int) *grid.Grid {
	const alphabet = " Programmieren!"
	g := grid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, rune(alphabet[rng.Intn(len(alphabet))]))
		}
	}
	return g
}

func reversed(s []rune) []rune {
	out := make([]rune, len(s))
	for i, ch := range s {
		out[len(s)-1-i] = ch
	}
	return out
}

var _ = Describe("Transforms", func() {
	var (
		rng *rand.Rand
		g   *grid.Grid
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
		g = randomGrid(rng, 30, 95)
	})

	Describe("Mirror", func() {
		It("is an involution", func() {
			Expect(grid.Mirror(grid.Mirror(g)).Equal(g)).To(BeTrue())
		})

		It("reverses every row", func() {
			m := grid.Mirror(g)
			for r := 0; r < g.Rows(); r++ {
				Expect(m.Row(r)).To(Equal(reversed(g.Row(r))))
			}
		})

		It("keeps dimensions", func() {
			m := grid.Mirror(g)
			Expect(m.Rows()).To(Equal(g.Rows()))
			Expect(m.Cols()).To(Equal(g.Cols()))
		})
	})

	Describe("Scroll", func() {
		It("moves the first row to the bottom", func() {
			s := grid.Scroll(g)
			Expect(s.Row(g.Rows() - 1)).To(Equal(g.Row(0)))
			for r := 0; r < g.Rows()-1; r++ {
				Expect(s.Row(r)).To(Equal(g.Row(r + 1)))
			}
		})

		It("returns to the original after one full cycle", func() {
			s := g
			for i := 0; i < g.Rows(); i++ {
				s = grid.Scroll(s)
			}
			Expect(s.Equal(g)).To(BeTrue())
		})

		It("is not the identity before a full cycle", func() {
			s := g
			for i := 0; i < g.Rows()-1; i++ {
				s = grid.Scroll(s)
				Expect(s.Equal(g)).To(BeFalse())
			}
		})

		It("commutes with Mirror", func() {
			Expect(grid.Scroll(grid.Mirror(g)).Equal(grid.Mirror(grid.Scroll(g)))).To(BeTrue())
		})
	})
})
