// Package tetris holds the rules of a falling-block puzzle: the shape catalog,
// the falling piece, the playfield of locked cells, timers and scoring.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < KindCount
}

// Color is an RGB block colour.
type Color struct {
	R, G, B uint8
}

// Point is a grid coordinate. X is the column and Y is the row; rows grow downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape is a catalog entry: the four cell offsets of a kind and its colour.
// Offset 0 is the rotation pivot.
type Shape struct {
	Offsets [4]Point
	Color   Color
}

var catalog = [KindCount]Shape{
	KindI: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {0, 2}}, Color: Color{0x6c, 0xc6, 0xd9}},
	KindJ: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {-1, 1}}, Color: Color{0x00, 0x00, 0x8b}},
	KindL: {Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {1, 1}}, Color: Color{0xf0, 0x7e, 0x13}},
	KindO: {Offsets: [4]Point{{0, 0}, {0, -1}, {1, 0}, {1, -1}}, Color: Color{0xf1, 0xe6, 0x0d}},
	KindS: {Offsets: [4]Point{{0, 0}, {-1, 0}, {0, -1}, {1, -1}}, Color: Color{0x65, 0xb3, 0x2e}},
	KindT: {Offsets: [4]Point{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}, Color: Color{0x7b, 0x21, 0x7f}},
	KindZ: {Offsets: [4]Point{{0, 0}, {1, 0}, {0, -1}, {-1, -1}}, Color: Color{0xe5, 0x1b, 0x20}},
}

// ShapeOf returns the catalog entry for k. It panics on an unknown kind.
func ShapeOf(k Kind) Shape {
	if !k.Valid() {
		panic("unknown piece kind " + k.String())
	}
	return catalog[k]
}
