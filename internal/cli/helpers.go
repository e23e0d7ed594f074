package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func logCompletion(w io.Writer, menuID, reason string, err error, sig os.Signal) {
	switch {
	case err == nil && reason == domain.StopReasonRequested:
		printSystemMessage(w, "Stopped at '%s' menu.", menuID)
	case err == nil:
		printSystemMessage(w, "Finished at '%s' menu.", menuID)
	case !isInterrupted(err):
		return
	case sig == os.Interrupt:
		fmt.Fprint(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted at '%s' menu.", menuID)
	case sig != nil:
		fmt.Fprint(w, "\n")
		printSystemMessage(w, "Terminated at '%s' menu.", menuID)
	default:
		fmt.Fprint(w, "\n")
		printSystemMessage(w, "Interrupted at '%s' menu.", menuID)
	}
}
