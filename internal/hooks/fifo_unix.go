//go:build unix

package hooks

import (
	"errors"

	"golang.org/x/sys/unix"
)

const nonBlockFlag = unix.O_NONBLOCK

// isNoReader reports the errors a non-blocking FIFO open returns when nobody reads it.
func isNoReader(err error) bool {
	return errors.Is(err, unix.ENXIO) || errors.Is(err, unix.ENODEV)
}
