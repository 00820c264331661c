package geometry

import "github.com/GeheimCoding/Dice/pkg/math"

// Icosahedron returns the regular icosahedron with vertices at the cyclic
// permutations of (0, ±1, ±φ). All 20 faces are wound outward.
func Icosahedron() *Mesh {
	phi := (1 + math.Sqrt(5)) / 2

	// Named by side: l/r = ∓X, u/d = ±Y, f/b = ±Z.
	const (
		lu = iota
		ld
		ru
		rd
		uf
		ub
		df
		db
		fl
		fr
		bl
		br
	)

	vertices := []Vertex{
		lu: {-phi, 1, 0},
		ld: {-phi, -1, 0},
		ru: {phi, 1, 0},
		rd: {phi, -1, 0},
		uf: {0, phi, 1},
		ub: {0, phi, -1},
		df: {0, -phi, 1},
		db: {0, -phi, -1},
		fl: {-1, 0, phi},
		fr: {1, 0, phi},
		bl: {-1, 0, -phi},
		br: {1, 0, -phi},
	}

	indices := []uint32{
		// top pyramid
		ub, uf, ru,
		ub, ru, br,
		ub, br, bl,
		ub, bl, lu,
		ub, lu, uf,
		// pentagonal antiprism
		fl, uf, lu,
		fl, fr, uf,
		fr, ru, uf,
		fr, rd, ru,
		rd, br, ru,
		rd, db, br,
		db, bl, br,
		db, ld, bl,
		ld, lu, bl,
		ld, fl, lu,
		// bottom pyramid
		df, db, rd,
		df, rd, fr,
		df, fr, fl,
		df, fl, ld,
		df, ld, db,
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}
