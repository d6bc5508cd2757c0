package waker

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var pkgLogger atomic.Pointer[zap.Logger]

func init() {
	pkgLogger.Store(zap.NewNop())
}

// SetLogger installs the logger used for vtable registration events. The
// default is a nop logger; pass nil to restore it. The dispatch operations
// themselves never log.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	return pkgLogger.Load()
}
