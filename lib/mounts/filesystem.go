package mounts

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

//go:generate counterfeiter -o ../../fakes/filesystem.go --fake-name Filesystem . Filesystem
type Filesystem interface {
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	CreateFile(path string, perm os.FileMode) error
	Remove(path string) error
	Accessible(path string) bool
}

// LinuxFilesystem resolves every path in the mount namespace of the calling
// thread. Errors are reduced to the underlying errno.
type LinuxFilesystem struct{}

func (LinuxFilesystem) Mkdir(path string, perm os.FileMode) error {
	err := os.Mkdir(path, perm)
	if err != nil && !os.IsExist(err) {
		return errnoOf(err)
	}
	return nil
}

func (LinuxFilesystem) MkdirAll(path string, perm os.FileMode) error {
	return errnoOf(os.MkdirAll(path, perm))
}

func (LinuxFilesystem) CreateFile(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, perm)
	if err != nil {
		return errnoOf(err)
	}
	return f.Close()
}

func (LinuxFilesystem) Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errnoOf(err)
}

func (LinuxFilesystem) Accessible(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
