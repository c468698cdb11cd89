//go:build !linux

package hooks

import "errors"

func setHostname(string) error {
	return errors.New("setting the hostname is not supported on this platform")
}
