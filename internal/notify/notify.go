// Package notify posts the end of the slope sweep as a desktop notification.
package notify

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/iburimskiy/slope-visualization/internal/config"
	"github.com/ncruces/zenity"
)

// Desktop sends notifications in the background so the window never waits
// on the external notifier.
type Desktop struct {
	logger   *log.Logger
	notify   func(text string, options ...zenity.Option) error
	disabled atomic.Bool
	wg       sync.WaitGroup
}

func New(logger *log.Logger) *Desktop {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Desktop{logger: logger, notify: zenity.Notify}
}

func (d *Desktop) Best(float64, float64) {}

func (d *Desktop) Finished(minimumSlope float64) {
	if d.disabled.Load() {
		return
	}
	msg := Message(minimumSlope)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.notify(msg, zenity.Title(config.Title)); err != nil {
			if d.disabled.CompareAndSwap(false, true) {
				d.logger.Printf("notifications disabled: %v", err)
			}
		}
	}()
}

// Wait blocks until every notification sent so far has been delivered or
// has failed.
func (d *Desktop) Wait() { d.wg.Wait() }

func Message(minimumSlope float64) string {
	return fmt.Sprintf("Finished drawing. Minimum slope: %.2f", minimumSlope)
}
