package contour

import "math"

// quadEngine is the default Engine: a marching-squares tracer over the
// canonical curvilinear grid. Construction copies the grid; queries
// are read-only, so one engine may serve concurrent queries.
type quadEngine struct {
	g          grid
	rows, cols int
}

func newQuadEngine(g grid) *quadEngine {
	return &quadEngine{g: g, rows: len(g.z), cols: len(g.z[0])}
}

func (e *quadEngine) point(i, j int) Point {
	return Point{X: e.g.x[i][j], Y: e.g.y[i][j]}
}

// quadValid reports whether the quad with lower-left sample (i, j) has
// no masked corner.
func (e *quadEngine) quadValid(i, j int) bool {
	if e.g.mask == nil {
		return true
	}
	return !(e.g.mask[i][j] || e.g.mask[i][j+1] || e.g.mask[i+1][j] || e.g.mask[i+1][j+1])
}

// crossing interpolates the point where the field crosses v on the
// grid edge between samples (ia, ja) and (ib, jb). The endpoints are
// ordered canonically before interpolating, so the two quads sharing
// an edge compute bit-identical crossing points and paths can be
// chained by exact equality.
func (e *quadEngine) crossing(ia, ja, ib, jb int, v float64) Point {
	if ib < ia || (ib == ia && jb < ja) {
		ia, ja, ib, jb = ib, jb, ia, ja
	}
	za, zb := e.g.z[ia][ja], e.g.z[ib][jb]
	t := (v - za) / (zb - za)
	pa, pb := e.point(ia, ja), e.point(ib, jb)
	return Point{X: pa.X + t*(pb.X-pa.X), Y: pa.Y + t*(pb.Y-pa.Y)}
}

// TraceLine implements Engine. It emits one vertex array per disjoint
// contour path at the level; closed loops repeat their first vertex.
func (e *quadEngine) TraceLine(level float64) [][]Point {
	var segs []segment
	for i := 0; i < e.rows-1; i++ {
		for j := 0; j < e.cols-1; j++ {
			if e.quadValid(i, j) {
				segs = e.appendLineSegments(segs, i, j, level)
			}
		}
	}
	return chainSegments(segs)
}

// appendLineSegments runs one marching-squares cell. Corners are
// walked counterclockwise; a segment runs from each crossing that
// leaves the z >= level region to the next crossing that re-enters it,
// which keeps the region on the segment's left.
func (e *quadEngine) appendLineSegments(segs []segment, i, j int, level float64) []segment {
	ci := [4]int{i, i, i + 1, i + 1}
	cj := [4]int{j, j + 1, j + 1, j}
	var inside [4]bool
	for k := 0; k < 4; k++ {
		inside[k] = e.g.z[ci[k]][cj[k]] >= level
	}
	type crossing struct {
		p    Point
		exit bool
	}
	var cross []crossing
	for k := 0; k < 4; k++ {
		n := (k + 1) % 4
		if inside[k] != inside[n] {
			cross = append(cross, crossing{
				p:    e.crossing(ci[k], cj[k], ci[n], cj[n], level),
				exit: inside[k],
			})
		}
	}
	// Crossings alternate exit/entry around the cell, so the element
	// after an exit is always an entry.
	for m, c := range cross {
		if !c.exit {
			continue
		}
		q := cross[(m+1)%len(cross)].p
		if c.p != q {
			segs = append(segs, segment{a: c.p, b: q})
		}
	}
	return segs
}

// TraceFilled implements Engine. It emits one vertex/code entry per
// connected region of min <= z <= max, exterior ring first, holes
// after, with MoveTo...ClosePoly spans delimiting the rings.
func (e *quadEngine) TraceFilled(min, max float64) ([][]Point, [][]PathCode) {
	set := newEdgeSet()
	for i := 0; i < e.rows-1; i++ {
		for j := 0; j < e.cols-1; j++ {
			if !e.quadValid(i, j) {
				continue
			}
			frag := e.bandFragment(i, j, min, max)
			for k := range frag {
				set.add(frag[k], frag[(k+1)%len(frag)])
			}
		}
	}
	return assemblePolygons(chainSegments(set.segments()))
}

type clipVertex struct {
	p Point
	z float64
}

// bandFragment clips one cell to the band min <= z <= max and returns
// the fragment's boundary, counterclockwise, without a closing vertex.
// nil means the cell contributes nothing.
func (e *quadEngine) bandFragment(i, j int, min, max float64) []Point {
	quad := []clipVertex{
		{e.point(i, j), e.g.z[i][j]},
		{e.point(i, j+1), e.g.z[i][j+1]},
		{e.point(i+1, j+1), e.g.z[i+1][j+1]},
		{e.point(i+1, j), e.g.z[i+1][j]},
	}
	frag := clipFragment(clipFragment(quad, min, false), max, true)
	pts := make([]Point, 0, len(frag))
	for _, v := range frag {
		if len(pts) == 0 || pts[len(pts)-1] != v.p {
			pts = append(pts, v.p)
		}
	}
	for len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	return pts
}

// clipFragment is one Sutherland-Hodgman pass against z >= v (or
// z <= v when upper is set), with z linear along each edge.
func clipFragment(in []clipVertex, v float64, upper bool) []clipVertex {
	keep := func(z float64) bool {
		if upper {
			return z <= v
		}
		return z >= v
	}
	var out []clipVertex
	for k := range in {
		a, b := in[k], in[(k+1)%len(in)]
		if keep(a.z) {
			out = append(out, a)
		}
		if keep(a.z) != keep(b.z) {
			out = append(out, clipCrossing(a, b, v))
		}
	}
	return out
}

// clipCrossing interpolates a threshold crossing with canonically
// ordered endpoints, for the same bit-identity reason as
// quadEngine.crossing: the two fragments sharing a cell border must
// produce exactly equal vertices for edge cancellation to work.
func clipCrossing(a, b clipVertex, v float64) clipVertex {
	if b.p.X < a.p.X || (b.p.X == a.p.X && b.p.Y < a.p.Y) {
		a, b = b, a
	}
	t := (v - a.z) / (b.z - a.z)
	return clipVertex{
		p: Point{X: a.p.X + t*(b.p.X-a.p.X), Y: a.p.Y + t*(b.p.Y-a.p.Y)},
		z: v,
	}
}

type segment struct {
	a, b Point
}

type edgeKey struct {
	a, b Point
}

// edgeSet collects directed fragment edges, cancelling pairs that
// appear in both directions. Interior cell borders are traversed once
// in each direction by the two adjacent fragments and vanish; edges on
// the region boundary, the grid border, and mask borders survive.
type edgeSet struct {
	count map[edgeKey]int
	order []edgeKey // insertion order keeps the output deterministic
}

func newEdgeSet() *edgeSet {
	return &edgeSet{count: make(map[edgeKey]int)}
}

func (s *edgeSet) add(a, b Point) {
	if a == b {
		return
	}
	rev := edgeKey{a: b, b: a}
	if s.count[rev] > 0 {
		s.count[rev]--
		return
	}
	k := edgeKey{a: a, b: b}
	if s.count[k] == 0 {
		s.order = append(s.order, k)
	}
	s.count[k]++
}

func (s *edgeSet) segments() []segment {
	var segs []segment
	for _, k := range s.order {
		for n := s.count[k]; n > 0; n-- {
			segs = append(segs, segment{a: k.a, b: k.b})
		}
	}
	return segs
}

// chainSegments links directed segments end to start into maximal
// paths. Paths whose start has no incoming segment are open contour
// lines; the remainder are closed loops, which come out with their
// first vertex repeated at the end.
func chainSegments(segs []segment) [][]Point {
	if len(segs) == 0 {
		return nil
	}
	byStart := make(map[Point][]int, len(segs))
	indeg := make(map[Point]int, len(segs))
	for i, s := range segs {
		byStart[s.a] = append(byStart[s.a], i)
		indeg[s.b]++
	}
	used := make([]bool, len(segs))
	next := func(p Point) int {
		lst := byStart[p]
		for len(lst) > 0 {
			i := lst[len(lst)-1]
			lst = lst[:len(lst)-1]
			byStart[p] = lst
			if !used[i] {
				return i
			}
		}
		return -1
	}
	var paths [][]Point
	walk := func(i int) {
		used[i] = true
		pts := []Point{segs[i].a, segs[i].b}
		for {
			j := next(pts[len(pts)-1])
			if j < 0 {
				break
			}
			used[j] = true
			pts = append(pts, segs[j].b)
		}
		paths = append(paths, pts)
	}
	for i, s := range segs {
		if !used[i] && indeg[s.a] == 0 {
			walk(i)
		}
	}
	for i := range segs {
		if !used[i] {
			walk(i)
		}
	}
	return paths
}

// assemblePolygons groups closed rings into polygons with holes and
// encodes them as parallel vertex/code streams. Ring orientation
// separates exteriors from holes; the sign convention adapts to the
// grid's overall orientation so mirrored grids still classify
// correctly.
func assemblePolygons(paths [][]Point) ([][]Point, [][]PathCode) {
	type ring struct {
		pts  []Point // closed: first == last
		area float64 // signed
	}
	var rings []ring
	var total float64
	for _, pts := range paths {
		if len(pts) < 4 || pts[0] != pts[len(pts)-1] {
			continue
		}
		a := signedArea(pts)
		if a == 0 {
			continue
		}
		rings = append(rings, ring{pts: pts, area: a})
		total += a
	}
	orient := 1.0
	if total < 0 {
		orient = -1
	}
	var exteriors []ring
	var holes []ring
	for _, r := range rings {
		if r.area*orient > 0 {
			exteriors = append(exteriors, r)
		} else {
			holes = append(holes, r)
		}
	}
	holesOf := make([][]ring, len(exteriors))
	for _, h := range holes {
		best := -1
		for i, ex := range exteriors {
			if !pointInRing(h.pts[0], ex.pts) {
				continue
			}
			if best < 0 || math.Abs(ex.area) < math.Abs(exteriors[best].area) {
				best = i
			}
		}
		if best >= 0 {
			holesOf[best] = append(holesOf[best], h)
		}
	}
	var vertices [][]Point
	var codes [][]PathCode
	for i, ex := range exteriors {
		var vs []Point
		var cs []PathCode
		emit := func(r ring) {
			vs = append(vs, r.pts...)
			cs = append(cs, MoveTo)
			for k := 1; k < len(r.pts)-1; k++ {
				cs = append(cs, LineTo)
			}
			cs = append(cs, ClosePoly)
		}
		emit(ex)
		for _, h := range holesOf[i] {
			emit(h)
		}
		vertices = append(vertices, vs)
		codes = append(codes, cs)
	}
	return vertices, codes
}

// signedArea computes the shoelace area of a closed ring (first vertex
// repeated at the end). Positive means counterclockwise.
func signedArea(pts []Point) float64 {
	var s float64
	for i := 0; i+1 < len(pts); i++ {
		s += pts[i].Cross(pts[i+1])
	}
	return s / 2
}

// pointInRing is a ray cast against a closed ring.
func pointInRing(p Point, ring []Point) bool {
	in := false
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xi := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xi {
				in = !in
			}
		}
	}
	return in
}
