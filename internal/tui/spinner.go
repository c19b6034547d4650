package tui

import (
	"fmt"
	"time"

	"github.com/muesli/termenv"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders a small progress indicator on stdout while a slow step
// runs. It is purely cosmetic; Stop must be called before printing anything
// else.
type Spinner struct {
	label string
	stop  chan struct{}
	done  chan struct{}
}

// StartSpinner begins animating a spinner next to label.
func StartSpinner(label string) *Spinner {
	s := &Spinner{
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.done)
	p := termenv.ColorProfile()
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.stop:
			// Clear the spinner line before handing the terminal back.
			fmt.Printf("\r%*s\r", len(s.label)+2, "")
			return
		case <-ticker.C:
			glyph := termenv.String(spinnerFrames[frame%len(spinnerFrames)]).Foreground(p.Color("#38bdf8"))
			fmt.Printf("\r%s %s", glyph, s.label)
			frame++
		}
	}
}

// Stop halts the animation and clears its line.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}
