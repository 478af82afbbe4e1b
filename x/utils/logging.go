package utils

import (
	"time"

	"github.com/iov-one/bazaar"
)

// LogResult writes information about the time and result of an operation
// to the logger of the block info. Failures are logged at error level,
// success at info level.
func LogResult(info bazaar.BlockInfo, start time.Time, msg string, err error, keyvals ...interface{}) {
	delta := time.Since(start)
	logger := info.Logger().With("duration", delta/time.Microsecond)
	if len(keyvals) > 0 {
		logger = logger.With(keyvals...)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	if err != nil {
		logger.Error(msg, "err", err)
	} else {
		logger.Info(msg)
	}
}
