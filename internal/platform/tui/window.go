package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce/internal/media"
)

// quitTimeout bounds how long Destroy waits for the program to restore
// the terminal.
const quitTimeout = 2 * time.Second

// Window is a running Bubble Tea program.
type Window struct {
	program *tea.Program
	done    chan struct{}
	err     error

	logicalW, logicalH int
	cols, rows         int
}

var _ media.Window = (*Window)(nil)

// openWindow starts the program in the background. When the program ends
// on its own a quit event is queued.
func openWindow(title string, width, height, cols, rows int, keys *KeyMapper, theme Theme) *Window {
	w := &Window{
		done:     make(chan struct{}),
		logicalW: width,
		logicalH: height,
		cols:     cols,
		rows:     rows,
	}
	w.program = tea.NewProgram(
		NewModel(title, keys, theme),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	go func() {
		defer close(w.done)
		_, w.err = w.program.Run()
		keys.PushQuit()
	}()
	return w
}

// SetIcon has nothing to set in a terminal.
func (w *Window) SetIcon(icon media.Surface) error {
	return nil
}

func (w *Window) CreateRenderer() (media.Renderer, error) {
	return NewRenderer(w.logicalW, w.logicalH, w.cols, w.rows, NewPainter(nil), w), nil
}

func (w *Window) show(frame string) {
	select {
	case <-w.done:
	default:
		w.program.Send(frameMsg(frame))
	}
}

// Destroy stops the program and waits for the terminal to be restored.
func (w *Window) Destroy() error {
	w.program.Quit()
	select {
	case <-w.done:
	case <-time.After(quitTimeout):
		w.program.Kill()
		<-w.done
	}
	return w.err
}
