package utils

import (
	"context"
	"log/slog"
)

func logAt(level slog.Level, e error) {
	if e != nil {
		slog.Log(context.Background(), level, "", "error", e)
	}
}

func Loge(e error) {
	logAt(slog.LevelError, e)
}

func Logwe(e error) {
	logAt(slog.LevelWarn, e)
}

func Logde(e error) {
	logAt(slog.LevelDebug, e)
}
