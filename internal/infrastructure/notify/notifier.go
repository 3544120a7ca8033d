// Package notify implements the user-visible notification sink. In the HTTP
// deployment notifications surface as structured log events; a recording
// implementation backs tests.
package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info().Str("toast", "success").Msg(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Info().Str("toast", "error").Msg(message)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	r.Successes = append(r.Successes, message)
	r.mu.Unlock()
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	r.Errors = append(r.Errors, message)
	r.mu.Unlock()
}
