//go:build !linux

package hooks

import "errors"

var errMountUnsupported = errors.New("mount is not supported on this platform")

func doMount(mountArgs) error   { return errMountUnsupported }
func doUmount(umountArgs) error { return errMountUnsupported }
