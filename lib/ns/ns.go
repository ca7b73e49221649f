package ns

import "errors"

var ErrNotNamespace = errors.New("not a namespace reference")

//go:generate counterfeiter -o ../../fakes/handle.go --fake-name Handle . Handle
type Handle interface {
	Close() error
	IsOpen() bool
	Fd() uintptr
	Name() string
}

//go:generate counterfeiter -o ../../fakes/namespacer.go --fake-name Namespacer . Namespacer
type Namespacer interface {
	GetFromPath(string) (Handle, error)
	Set(Handle) error
	Unshare() error
}
