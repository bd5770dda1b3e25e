package gridstore

// CanBuildFootprint reports whether a size footprint with lower-left corner
// origin can be placed under opts.
//
// A footprint fails when any covered tile is unbuildable or occupied, lies in
// the static or structure padding (unless opts.IgnorePadding), lies in the
// resource padding (opts.IncludeResourcePadding) or lacks creep
// (opts.RequireCreep). With opts.HasAddOn the 2×2 add-on footprint at
// (origin.X+size.X, origin.Y) must pass the same checks.
//
// A footprint that does not fit inside the map is reported as unbuildable
// rather than treated as an out-of-bounds access.
// Complexity: O(size.X×size.Y).
func (g *Grid) CanBuildFootprint(size Size, origin Location, opts BuildOptions) bool {
	if !g.rectBuildable(size, origin, opts) {
		return false
	}
	if opts.HasAddOn {
		return g.rectBuildable(addOnSize, origin.Add(size.X, 0), opts)
	}
	return true
}

func (g *Grid) rectBuildable(size Size, origin Location, opts BuildOptions) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	if !g.InBounds(origin) || !g.InBounds(origin.Add(size.X-1, size.Y-1)) {
		return false
	}
	for y := origin.Y; y < origin.Y+size.Y; y++ {
		for x := origin.X; x < origin.X+size.X; x++ {
			if !g.tileBuildable(g.Index(Location{X: x, Y: y}), opts) {
				return false
			}
		}
	}
	return true
}

func (g *Grid) tileBuildable(i int, opts BuildOptions) bool {
	if g.placement[i] == 0 || g.occupied[i] {
		return false
	}
	if !opts.IgnorePadding && (g.padding[i] || g.structurePadding[i]) {
		return false
	}
	if opts.IncludeResourcePadding && g.resourcePadding[i] {
		return false
	}
	if opts.RequireCreep && (g.creep == nil || g.creep[i] == 0) {
		return false
	}
	return true
}
