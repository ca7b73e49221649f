package mounts

//go:generate counterfeiter -o ../../fakes/mounter.go --fake-name Mounter . Mounter
type Mounter interface {
	MountTmpfs(target, options string) error
	Bind(source, target string, recursive bool) error
	Move(source, target string) error
	MakePrivate(target string, recursive bool) error
	MakeShared(target string, recursive bool) error
	Unmount(target string) error
	Detach(target string) error
}
