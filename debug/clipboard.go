// clipboard.go - "copy register dump" monitor command

package debug

import (
	"sync"

	"golang.design/x/clipboard"
)

// clipboardOnce/clipboardOK guard lazy, one-time clipboard init across
// every Monitor in the process, mirroring the teacher's lazy-init idiom.
var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// CopyRegisterDump copies the monitor's current register dump to the
// system clipboard. Returns false if no clipboard is available (e.g.
// a headless CI environment).
func (m *Monitor) CopyRegisterDump() bool {
	clipboardOnce.Do(func() {
		clipboardOK = clipboard.Init() == nil
	})
	if !clipboardOK {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(m.RegisterDump()))
	return true
}
