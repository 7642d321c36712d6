//go:build headless

// ascii_output.go - headless fallback renderer: downsamples VRAM into
// a block-character frame printed to stdout, for environments with no
// window system.

package video

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
)

// ASCIIOutput renders VRAM frames as ANSI block glyphs. It never
// blocks on a game loop; the caller drives it once per frame.
type ASCIIOutput struct {
	mu     sync.Mutex
	inputs *arcadeio.Inputs
	cols   int
}

// NewASCIIOutput detects the current terminal width (falling back to
// 80 columns when stdout isn't a TTY) and binds to inputs for the
// caller to poll separately (there is no keyboard focus to read here).
func NewASCIIOutput(inputs *arcadeio.Inputs) *ASCIIOutput {
	cols := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		cols = w
	}
	return &ASCIIOutput{inputs: inputs, cols: cols}
}

// UpdateVRAM prints a downsampled frame: one glyph per 2x4 source
// block, using ' ' for dark blocks and '█' for lit ones.
func (a *ASCIIOutput) UpdateVRAM(vram []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	const w, h = 224, 256
	glyphW, glyphH := 2, 4
	cols := w / glyphW
	rows := h / glyphH
	if cols > a.cols {
		cols = a.cols
		glyphW = w / cols
	}

	var sb strings.Builder
	sb.WriteString("\x1b[H\x1b[2J")
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			lit := false
			for dy := 0; dy < glyphH && !lit; dy++ {
				for dx := 0; dx < glyphW && !lit; dx++ {
					col := gx*glyphW + dx
					row := gy*glyphH + dy
					if col >= w || row >= h {
						continue
					}
					byteIdx := col*(h/8) + row/8
					bit := row % 8
					if byteIdx < len(vram) && vram[byteIdx]&(1<<uint(bit)) != 0 {
						lit = true
					}
				}
			}
			if lit {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// NewOutput is the build-tag-selected factory cmd/spaceinvaders calls;
// in this (headless) build it prints block glyphs to stdout.
func NewOutput(inputs *arcadeio.Inputs) Output {
	return NewASCIIOutput(inputs)
}

// Run has no window or vsync clock to wait on, so it just calls step
// in a tight loop; frames run as fast as step returns, with no
// wall-clock pacing.
func (a *ASCIIOutput) Run(title string, scale int, step func() bool) error {
	for step() {
	}
	return nil
}

// Close is a no-op; kept so callers can treat both outputs uniformly.
func (a *ASCIIOutput) Close() {}
