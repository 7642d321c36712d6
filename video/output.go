// output.go - the common surface cmd/spaceinvaders drives regardless
// of which build tag compiled in the concrete renderer.

package video

// Output is implemented by both EbitenOutput and ASCIIOutput. Run
// drives the display: it calls step once per display frame and stops
// as soon as step returns false or the window is closed. The windowed
// backend blocks inside ebiten's own game loop; the headless backend
// just loops step directly, since there's no display clock to wait on.
type Output interface {
	UpdateVRAM(vram []byte)
	Run(title string, scale int, step func() bool) error
	Close()
}

// NewOutput is implemented once per build tag (ebiten_output.go and
// ascii_output.go) and returns the concrete backend selected at
// compile time by the headless build tag.
