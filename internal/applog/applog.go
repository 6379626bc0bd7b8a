package applog

import (
	"encoding/json"
	"log"
	"time"
)

// Event writes one JSON line with ts/level/msg plus the given fields.
func Event(logger *log.Logger, level, msg string, fields map[string]any) {
	if logger == nil {
		return
	}
	payload := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		payload[k] = v
	}
	payload["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	payload["level"] = level
	payload["msg"] = msg

	b, err := json.Marshal(payload)
	if err != nil {
		logger.Printf(`{"level":"error","msg":"log_marshal_failed","error":%q}`, err.Error())
		return
	}
	logger.Print(string(b))
}

func Info(logger *log.Logger, msg string, fields map[string]any) {
	Event(logger, "info", msg, fields)
}

func Warn(logger *log.Logger, msg string, fields map[string]any) {
	Event(logger, "warn", msg, fields)
}

func Error(logger *log.Logger, msg string, fields map[string]any) {
	Event(logger, "error", msg, fields)
}
