package errors

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs an EditorError to stderr.
func (h *LogHandler) HandleError(err *EditorError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[collage error] %s [%s]", err.Op, err.Kind)
		if err.Element != "" {
			fmt.Fprintf(os.Stderr, " element=%s", err.Element)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[collage error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[collage panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[collage panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// ZerologHandler is an ErrorHandler that routes errors through a zerolog
// logger, for embedders that already run structured logging.
type ZerologHandler struct {
	Logger zerolog.Logger
}

// HandleError logs an EditorError as a structured event.
func (h *ZerologHandler) HandleError(err *EditorError) {
	if err == nil {
		return
	}
	ev := h.Logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Element != "" {
		ev = ev.Str("element", err.Element)
	}
	ev.Msg("editor error")
}

// HandlePanic logs a PanicError as a structured event.
func (h *ZerologHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.Error().
		Str("op", err.Op).
		Str("stack", err.StackTrace).
		Interface("value", err.Value).
		Msg("recovered panic")
}
