package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

type ClearValue struct {
	Color   Color
	Depth   float32
	Stencil uint32
}
