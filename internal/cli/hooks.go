package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards render events to the CLI logger at debug level, so
// --verbose shows what the facade is doing without any output by default.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnFigure(style, size string, width, height float64) {
	h.logger.Debug("figure created",
		"style", style,
		"size", size,
		"width_in", width,
		"height_in", height,
	)
}

func (h logHooks) OnSave(path, format string, dpi int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("save failed", "path", path, "format", format, "err", err)
		return
	}
	h.logger.Debug("figure saved",
		"path", path,
		"format", format,
		"dpi", dpi,
		"elapsed", d.Round(time.Millisecond),
	)
}
