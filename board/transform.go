package board

// Transform is one of the eight elements of D4, the dihedral group of the
// square: four rotations and four reflections. Transform(0) is the
// identity and is the tie-break winner whenever more than one transform
// produces the same minimal board.
type Transform int

const (
	Identity Transform = iota
	Rotate90
	Rotate180
	Rotate270
	FlipHorizontal
	FlipVertical
	FlipDiagonal
	FlipAntiDiagonal

	numTransforms = 8
)

// Inverse returns the transform that undoes t. Reflections and the 180°
// rotation are each their own inverse; the 90° and 270° rotations invert
// each other.
func (t Transform) Inverse() Transform {
	switch t {
	case Rotate90:
		return Rotate270
	case Rotate270:
		return Rotate90
	default:
		return t
	}
}

// apply returns the board obtained by applying a single transform t to b.
// Canonical does not call this per-candidate; it folds all seven non-identity
// variants into one row pass instead. apply exists to let individual
// transforms be checked in isolation (round-trip and group-law tests).
func (t Transform) apply(b uint64) uint64 {
	if t == Identity {
		return b
	}
	var out uint64
	for r := 0; r < numRows; r++ {
		row := rowAt(b, r)
		col := colAt(b, r)
		switch t {
		case Rotate90:
			out = withRow(out, r, reverse7Table[col])
		case Rotate180:
			out = withRow(out, maxRow-r, reverse7Table[row])
		case Rotate270:
			out = withRow(out, maxRow-r, col)
		case FlipHorizontal:
			out = withRow(out, r, reverse7Table[row])
		case FlipVertical:
			out = withRow(out, maxRow-r, row)
		case FlipDiagonal:
			out = withRow(out, r, col)
		case FlipAntiDiagonal:
			out = withRow(out, maxRow-r, reverse7Table[col])
		}
	}
	return out
}

// Canonical returns the lexicographically smallest board among {t(b) : t in
// D4}, and the transform t such that t(b) == canonical. Ties are broken by
// transform index, so Identity wins whenever b is already canonical.
//
// All seven non-identity variants are accumulated in one pass over the
// board's rows, matching the reference getCanonicalBoard: each iteration
// extracts a single row and column from b and folds it directly into all
// seven candidate accumulators, so there is no per-row allocation and no
// branch on transform kind inside the loop. This is the single largest
// performance lever in the search.
func (b Board) Canonical() (Board, Transform) {
	var rot90, rot180, rot270, flipH, flipV, flipD, flipAD uint64
	word := uint64(b)
	for r := 0; r < numRows; r++ {
		row := rowAt(word, r)
		col := colAt(word, r)
		rrow := reverse7Table[row]
		rcol := reverse7Table[col]

		rot90 = withRow(rot90, r, rcol)
		rot180 = withRow(rot180, maxRow-r, rrow)
		rot270 = withRow(rot270, maxRow-r, col)
		flipH = withRow(flipH, r, rrow)
		flipV = withRow(flipV, maxRow-r, row)
		flipD = withRow(flipD, r, col)
		flipAD = withRow(flipAD, maxRow-r, rcol)
	}

	best := word
	bestT := Identity
	candidates := [numTransforms - 1]uint64{rot90, rot180, rot270, flipH, flipV, flipD, flipAD}
	for i, cand := range candidates {
		if cand < best {
			best = cand
			bestT = Rotate90 + Transform(i)
		}
	}
	return Board(best), bestT
}

// InvertTransformOnMove takes a Move expressed in a canonical frame
// produced by applying t, and returns the equivalent Move in the original
// (pre-transform) frame. This is how solver.Solve reports a solution in the
// caller's original coordinate system even though the search itself walks
// canonical states.
func (b Board) InvertTransformOnMove(m Move, t Transform) Move {
	if t == Identity {
		return m
	}
	inv := t.Inverse()
	fromR, fromC := invertCoord(inv, m.fromR, m.fromC)
	toR, toC := invertCoord(inv, m.toR, m.toC)
	setMask := uint64(1) << uint(bitIndex(toR, toC))
	midR, midC, _ := midpoint(fromR, fromC, toR, toC)
	clearMask := uint64(1)<<uint(bitIndex(fromR, fromC)) | uint64(1)<<uint(bitIndex(midR, midC))
	return Move{setMask: setMask, clearMask: clearMask, fromR: fromR, fromC: fromC, toR: toR, toC: toC}
}

// invertCoord maps (r, c) through transform t's coordinate action. It is
// the coordinate-space twin of apply, used only for single-point moves
// rather than whole boards.
func invertCoord(t Transform, r, c int) (int, int) {
	switch t {
	case Rotate90:
		return c, maxRow - r
	case Rotate180:
		return maxRow - r, maxRow - c
	case Rotate270:
		return maxRow - c, r
	case FlipHorizontal:
		return r, maxRow - c
	case FlipVertical:
		return maxRow - r, c
	case FlipDiagonal:
		return c, r
	case FlipAntiDiagonal:
		return maxRow - c, maxRow - r
	default:
		return r, c
	}
}
