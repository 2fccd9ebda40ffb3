package server

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "debug"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
	server      log.Logger
}

// NewWebLogger creates a new web logger for a specific render. Messages are
// also written to the server log.
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage, server log.Logger) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
		server:      server,
	}
}

// Infof implements core.Logger
func (wl *WebLogger) Infof(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.server != nil {
		wl.server.Infof("[%s] %s", wl.renderID, message)
	}
	wl.send("info", message)
}

// Debugf implements core.Logger
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.server != nil {
		wl.server.Debugf("[%s] %s", wl.renderID, message)
	}
	wl.send("debug", message)
}

func (wl *WebLogger) send(level, message string) {
	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
