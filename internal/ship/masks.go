package ship

// HullMask marks cells currently flagged as hull, for the viewer overlay.
func (g *Generator) HullMask() []float32 {
	mask := make([]float32, g.grid.Len())
	for p, c := range g.grid.All() {
		if c.Hull && c.Type != Void {
			mask[g.grid.Index(p)] = 1
		}
	}
	return mask
}

// DeadEndMask marks floor cells with at most one floor neighbour, the cells
// the next erosion pass would start from.
func (g *Generator) DeadEndMask() []float32 {
	mask := make([]float32, g.grid.Len())
	for p, c := range g.grid.All() {
		if c.Type == Floor && countNeighbours(g.grid, p, Floor) <= 1 {
			mask[g.grid.Index(p)] = 1
		}
	}
	return mask
}
