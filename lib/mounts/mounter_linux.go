package mounts

import (
	"errors"

	"github.com/moby/sys/mount"
	"golang.org/x/sys/unix"
)

// LinuxMounter returns bare errno values so that callers can prefix them
// with a description of the failed step.
type LinuxMounter struct{}

func (LinuxMounter) MountTmpfs(target, options string) error {
	return errnoOf(mount.Mount("tmpfs", target, "tmpfs", options))
}

func (LinuxMounter) Bind(source, target string, recursive bool) error {
	options := "bind"
	if recursive {
		options = "rbind"
	}

	return errnoOf(mount.Mount(source, target, "none", options))
}

func (LinuxMounter) Move(source, target string) error {
	return errnoOf(unix.Mount(source, target, "", unix.MS_MOVE|unix.MS_REC, ""))
}

func (LinuxMounter) MakePrivate(target string, recursive bool) error {
	if recursive {
		return errnoOf(mount.MakeRPrivate(target))
	}
	return errnoOf(mount.MakePrivate(target))
}

func (LinuxMounter) MakeShared(target string, recursive bool) error {
	if recursive {
		return errnoOf(mount.MakeRShared(target))
	}
	return errnoOf(mount.MakeShared(target))
}

func (LinuxMounter) Unmount(target string) error {
	return errnoOf(unix.Unmount(target, 0))
}

func (LinuxMounter) Detach(target string) error {
	return errnoOf(unix.Unmount(target, unix.MNT_DETACH))
}

func errnoOf(err error) error {
	if err == nil {
		return nil
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}

	return err
}
