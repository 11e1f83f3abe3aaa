// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// This file contains helper functions for UI management while a question is
// outstanding.
package cmd

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"askdb/cli/internal/asking"
)

// startProgressSpinner starts the wait animation for an outstanding question.
// The line cycles through the four progress labels (thinking, exploring,
// generating, executing) based on elapsed time; the labels are cosmetic and
// carry no data. The returned function stops the animation and removes the
// line.
func startProgressSpinner() func() {
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}

	frames := []string{"|", "/", "-", "\\"}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	start := time.Now()

	wg.Add(1)
	go func() {
		defer wg.Done()
		idx := 0
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				idx++
				label := asking.StageText(asking.StageAt(time.Since(start)))
				area.Update(fmt.Sprintf("%s %s", frames[idx%len(frames)], label))
			case <-stop:
				return
			}
		}
	}()

	return func() {
		close(stop)
		wg.Wait()
		area.Stop()
		cursor.Show()
	}
}
