package threading

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

//go:generate counterfeiter -o ../fakes/os_thread_locker.go --fake-name OSThreadLocker . OSThreadLocker
type OSThreadLocker interface {
	LockOSThread()
	UnlockOSThread()
}

type OSLocker struct{}

func (l *OSLocker) LockOSThread() {
	runtime.LockOSThread()
}

func (l *OSLocker) UnlockOSThread() {
	runtime.UnlockOSThread()
}

// Isolated runs callbacks on a dedicated OS thread whose filesystem
// attributes are no longer shared with the rest of the process. The kernel
// only lets a thread join another mount namespace once it owns its
// filesystem attributes.
//
// The thread is never unlocked: once the callback returns the runtime
// terminates it instead of handing it to other goroutines.
type Isolated struct {
	ThreadLocker OSThreadLocker
	Unshare      func(flags int) error
}

func NewIsolated() *Isolated {
	return &Isolated{
		ThreadLocker: &OSLocker{},
		Unshare:      unix.Unshare,
	}
}

func (i *Isolated) Run(callback func() error) error {
	resultCh := make(chan error, 1)

	go func() { resultCh <- i.run(callback) }()

	return <-resultCh
}

func (i *Isolated) run(callback func() error) error {
	i.ThreadLocker.LockOSThread()

	if err := i.Unshare(unix.CLONE_FS); err != nil {
		return fmt.Errorf("unshare filesystem attributes: %s", err)
	}

	return callback()
}
