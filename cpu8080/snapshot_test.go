package cpu8080

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := newTestCPU([]byte{0x3E, 0x7A, 0x32, 0x00, 0x21}) // MVI A,0x7A ; STA 0x2100
	c.Step()
	c.Step()

	snap := TakeSnapshot(c)
	path := filepath.Join(t.TempDir(), "state.snap")
	if err := SaveToFile(snap, path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	fresh := New(nil)
	Restore(fresh, loaded)

	requireEqualU8(t, "A", fresh.A(), 0x7A)
	if fresh.Memory.Read(0x2100) != 0x7A {
		t.Errorf("RAM byte at 0x2100 = 0x%02X, want 0x7A", fresh.Memory.Read(0x2100))
	}
}

func TestSnapshotRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.snap")
	if err := os.WriteFile(path, []byte("NOPE"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected an error loading a file with an invalid magic")
	}
}
