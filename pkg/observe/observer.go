// Package observe intercepts every model call and forwards a normalized
// request/response trace to a log sink. Observability must never abort the
// classification pipeline: hooks recover from their own faults and degrade
// to warning entries.
package observe

import (
	"fmt"

	"go.uber.org/zap"
)

// Observer receives lifecycle hooks around every model call.
type Observer interface {
	OnCallStart(callID string, raw map[string]any)
	OnCallEnd(callID string, response string, failure error)
}

// NopObserver discards all hooks.
type NopObserver struct{}

func (NopObserver) OnCallStart(string, map[string]any) {}

func (NopObserver) OnCallEnd(string, string, error) {}

// LogObserver writes one entry per prompt fragment and exactly one terminal
// entry (response or error) per call ID to a zap sink. Evaluation is
// sequential, so a single-writer map is enough for the terminal bookkeeping.
type LogObserver struct {
	log  *zap.Logger
	done map[string]bool
}

func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{
		log:  log,
		done: make(map[string]bool),
	}
}

// OnCallStart logs the outgoing request. Flat prompts produce one entry;
// message lists produce one entry per fragment in order; unrecognized
// payloads are logged verbatim at warning level. Never fails the call.
func (o *LogObserver) OnCallStart(callID string, raw map[string]any) {
	defer o.recoverFault(callID)

	request := NormalizeRequest(raw)
	switch request.Shape {
	case ShapeFlatPrompt:
		o.log.Info("prompt",
			zap.String("call_id", callID),
			zap.String("content", request.Prompt))
	case ShapeMessageList:
		for i, message := range request.Messages {
			o.log.Info("message",
				zap.String("call_id", callID),
				zap.Int("index", i),
				zap.String("role", message.Role),
				zap.String("content", message.Content))
		}
	default:
		o.log.Warn("unrecognized request shape",
			zap.String("call_id", callID),
			zap.Any("request", raw))
	}
}

// OnCallEnd logs the terminal outcome: the error when failure is set,
// otherwise the raw response. Idempotent per call ID, so a retried callback
// dispatch cannot duplicate terminal entries.
func (o *LogObserver) OnCallEnd(callID string, response string, failure error) {
	defer o.recoverFault(callID)

	if o.done[callID] {
		return
	}
	o.done[callID] = true

	if failure != nil {
		o.log.Error("call failed",
			zap.String("call_id", callID),
			zap.Error(failure))
		return
	}
	o.log.Info("response",
		zap.String("call_id", callID),
		zap.String("content", response))
}

func (o *LogObserver) recoverFault(callID string) {
	r := recover()
	if r == nil {
		return
	}
	// The warning itself must not take the run down either.
	defer func() { _ = recover() }()
	o.log.Warn("observer fault",
		zap.String("call_id", callID),
		zap.String("fault", fmt.Sprint(r)))
}
