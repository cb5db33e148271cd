package main

import (
	"fmt"
	"sync"

	"github.com/milk9111/cannonball/physics"
	"github.com/milk9111/cannonball/prefabs"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyLedges writes the ledges to the system clipboard as a YAML ledges block
// that can be pasted into a level file.
func copyLedges(ledges []*physics.Ledge) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard: init: %w", clipboardErr)
	}

	data, err := prefabs.MarshalLedges(ledges)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
