//go:build !headless

package video

import (
	"testing"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
)

func TestEbitenOutputUpdateVRAMRotatesIntoBuffer(t *testing.T) {
	inputs := &arcadeio.Inputs{}
	out := NewEbitenOutput(inputs)
	defer out.Close()

	vram := make([]byte, vramWidth*vramHeight/8)
	vram[0] = 0xFF // first 8 rows of the first column all lit
	out.UpdateVRAM(vram)

	lit := false
	for i := 0; i+3 < len(out.rgba); i += 4 {
		if out.rgba[i] == 0xFF {
			lit = true
			break
		}
	}
	if !lit {
		t.Fatalf("expected at least one lit pixel after UpdateVRAM")
	}
}

func TestEbitenOutputLayoutReportsRotatedDimensions(t *testing.T) {
	out := NewEbitenOutput(&arcadeio.Inputs{})
	defer out.Close()

	w, h := out.Layout(0, 0)
	if w != vramHeight || h != vramWidth {
		t.Fatalf("expected rotated layout (%d,%d), got (%d,%d)", vramHeight, vramWidth, w, h)
	}
}

func TestEbitenOutputUpdateReturnsTerminationAfterClose(t *testing.T) {
	out := NewEbitenOutput(&arcadeio.Inputs{})
	out.running = true
	if err := out.Update(); err != nil {
		t.Fatalf("expected no error while running, got %v", err)
	}
	out.Close()
	if err := out.Update(); err == nil {
		t.Fatalf("expected Update to report termination after Close")
	}
}

func TestNewOutputReturnsEbitenBackend(t *testing.T) {
	out := NewOutput(&arcadeio.Inputs{})
	if _, ok := out.(*EbitenOutput); !ok {
		t.Fatalf("expected a windowed build to select EbitenOutput, got %T", out)
	}
}
