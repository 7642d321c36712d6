//go:build !headless

// ebiten_output.go - windowed output for the cabinet's 1bpp VRAM,
// rotated 90° the way the original cocktail cabinet's CRT was mounted.

package video

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
)

const (
	vramWidth  = 224
	vramHeight = 256
)

// EbitenOutput renders the cabinet's VRAM into a window and polls
// ebiten's keyboard state into an arcadeio.Inputs each frame.
type EbitenOutput struct {
	running bool

	mu     sync.RWMutex
	screen *ebiten.Image

	rgba       []byte // vramHeight x vramWidth x 4, already rotated
	inputs     *arcadeio.Inputs
	vsyncCount uint64
	stepFn     func() bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewEbitenOutput constructs a windowed output bound to inputs; the
// caller is responsible for starting the ebiten game loop via Run.
func NewEbitenOutput(inputs *arcadeio.Inputs) *EbitenOutput {
	return &EbitenOutput{
		rgba:   make([]byte, vramWidth*vramHeight*4),
		inputs: inputs,
	}
}

// NewOutput is the build-tag-selected factory cmd/spaceinvaders calls;
// in this (!headless) build it opens a real window.
func NewOutput(inputs *arcadeio.Inputs) Output {
	return NewEbitenOutput(inputs)
}

// Run starts ebiten's blocking game loop, calling step once per
// display frame before polling input; step returns false to quit.
func (eo *EbitenOutput) Run(title string, scale int, step func() bool) error {
	eo.running = true
	eo.stepFn = step
	ebiten.SetWindowSize(vramHeight*scale, vramWidth*scale) // swapped: rotated display
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(eo)
}

// UpdateVRAM copies a 1bpp VRAM frame (7168 bytes, 256x224 bits) into
// the output, unpacking and rotating it 90° counter-clockwise.
func (eo *EbitenOutput) UpdateVRAM(vram []byte) {
	eo.mu.Lock()
	defer eo.mu.Unlock()

	for col := 0; col < vramWidth; col++ {
		for rowByte := 0; rowByte < vramHeight/8; rowByte++ {
			b := vram[col*(vramHeight/8)+rowByte]
			for bit := 0; bit < 8; bit++ {
				on := b&(1<<uint(bit)) != 0
				srcY := rowByte*8 + bit
				// Rotate 90° CCW: (x, y) in source -> (y, width-1-x) in dest.
				dstX := srcY
				dstY := vramWidth - 1 - col
				idx := (dstY*vramHeight + dstX) * 4
				var v byte
				if on {
					v = 0xFF
				}
				eo.rgba[idx] = v
				eo.rgba[idx+1] = v
				eo.rgba[idx+2] = v
				eo.rgba[idx+3] = 0xFF
			}
		}
	}
}

// Update implements ebiten.Game: runs one step of the frame callback,
// polls input and checks for exit.
func (eo *EbitenOutput) Update() error {
	if !eo.running {
		return ebiten.Termination
	}
	if eo.stepFn != nil && !eo.stepFn() {
		return ebiten.Termination
	}
	eo.pollInput()
	eo.vsyncCount++
	return nil
}

// Draw implements ebiten.Game.
func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.mu.RLock()
	img := ebiten.NewImageFromImage(&rgbaImage{w: vramHeight, h: vramWidth, pix: eo.rgba})
	eo.mu.RUnlock()
	screen.DrawImage(img, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d", eo.vsyncCount))
}

// Layout implements ebiten.Game.
func (eo *EbitenOutput) Layout(outsideWidth, outsideHeight int) (int, int) {
	return vramHeight, vramWidth
}

func (eo *EbitenOutput) pollInput() {
	if eo.inputs == nil {
		return
	}
	eo.inputs.Coin = ebiten.IsKeyPressed(ebiten.Key5)
	eo.inputs.P1Start = ebiten.IsKeyPressed(ebiten.Key1)
	eo.inputs.P1Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	eo.inputs.P1Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	eo.inputs.P1Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	eo.inputs.P2Start = ebiten.IsKeyPressed(ebiten.Key2)

	if ebiten.IsKeyPressed(ebiten.KeyF12) {
		eo.copyRegisterDump("")
	}
}

// copyRegisterDump lazily initializes the system clipboard and copies
// text into it. Empty text copies nothing; the F12 poll above passes
// empty text, so F12 only initializes the clipboard.
func (eo *EbitenOutput) copyRegisterDump(text string) {
	eo.clipboardOnce.Do(func() {
		eo.clipboardOK = clipboard.Init() == nil
	})
	if !eo.clipboardOK || text == "" {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// CopyText exposes copyRegisterDump for callers outside this package.
// The debug monitor's clipboard command (debug/clipboard.go) does not
// go through it.
func (eo *EbitenOutput) CopyText(text string) { eo.copyRegisterDump(text) }

// Close stops the game loop on the next Update.
func (eo *EbitenOutput) Close() { eo.running = false }

// rgbaImage adapts a raw byte buffer to image.Image for
// ebiten.NewImageFromImage without an extra copy through image.RGBA's
// constructor checks.
type rgbaImage struct {
	w, h int
	pix  []byte
}

func (im *rgbaImage) ColorModel() color.Model { return color.RGBAModel }
func (im *rgbaImage) Bounds() image.Rectangle { return image.Rect(0, 0, im.w, im.h) }
func (im *rgbaImage) At(x, y int) color.Color {
	i := (y*im.w + x) * 4
	return color.RGBA{R: im.pix[i], G: im.pix[i+1], B: im.pix[i+2], A: im.pix[i+3]}
}
