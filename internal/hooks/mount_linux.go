//go:build linux

package hooks

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var mountFlags = map[string]uintptr{
	"ro":         unix.MS_RDONLY,
	"nosuid":     unix.MS_NOSUID,
	"nodev":      unix.MS_NODEV,
	"noexec":     unix.MS_NOEXEC,
	"sync":       unix.MS_SYNCHRONOUS,
	"remount":    unix.MS_REMOUNT,
	"bind":       unix.MS_BIND,
	"rec":        unix.MS_REC,
	"private":    unix.MS_PRIVATE,
	"slave":      unix.MS_SLAVE,
	"shared":     unix.MS_SHARED,
	"unbindable": unix.MS_UNBINDABLE,
}

var umountFlags = map[string]int{
	"force":    unix.MNT_FORCE,
	"detach":   unix.MNT_DETACH,
	"expire":   unix.MNT_EXPIRE,
	"nofollow": unix.UMOUNT_NOFOLLOW,
}

func doMount(m mountArgs) error {
	var flags uintptr
	for _, name := range m.Flags {
		f, ok := mountFlags[name]
		if !ok {
			return fmt.Errorf("unknown mount flag %q", name)
		}
		flags |= f
	}
	return unix.Mount(m.Source, m.Target, m.FSType, flags, "")
}

func doUmount(u umountArgs) error {
	var flags int
	for _, name := range u.Flags {
		f, ok := umountFlags[name]
		if !ok {
			return fmt.Errorf("unknown umount flag %q", name)
		}
		flags |= f
	}
	return unix.Unmount(u.Target, flags)
}
