package field

// Stencil weights for the 9-cell Laplacian approximation.
const (
	WeightCenter   = -1.0
	WeightAdjacent = 0.2
	WeightDiagonal = 0.05
)

// Laplacian approximates the diffusion operator for substance s at (x, y)
// using the weighted 3x3 neighbourhood. Only interior coordinates are valid.
func Laplacian(f *Field, x, y int, s Substance) float64 {
	if s == SubstanceB {
		return laplacianB(f, x, y)
	}
	return laplacianA(f, x, y)
}

// The two variants are split so the hot loop avoids a branch per neighbour.

func laplacianA(f *Field, x, y int) float64 {
	w := f.W
	c := f.cells
	i := y*w + x
	n, s := i-w, i+w
	return WeightCenter*c[i].A +
		WeightAdjacent*(c[n].A+c[s].A+c[i+1].A+c[i-1].A) +
		WeightDiagonal*(c[n+1].A+c[n-1].A+c[s+1].A+c[s-1].A)
}

func laplacianB(f *Field, x, y int) float64 {
	w := f.W
	c := f.cells
	i := y*w + x
	n, s := i-w, i+w
	return WeightCenter*c[i].B +
		WeightAdjacent*(c[n].B+c[s].B+c[i+1].B+c[i-1].B) +
		WeightDiagonal*(c[n+1].B+c[n-1].B+c[s+1].B+c[s-1].B)
}
