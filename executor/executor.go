package executor

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/ns"
)

//go:generate counterfeiter -o ../fakes/command.go --fake-name Command . Command
type Command interface {
	Execute(context Context) error
	String() string
}

//go:generate counterfeiter -o ../fakes/condition.go --fake-name Condition . Condition
type Condition interface {
	Satisfied(context Context) (bool, error)
	String() string
}

//go:generate counterfeiter -o ../fakes/context.go --fake-name Context . Context
type Context interface {
	Logger() lager.Logger
	Filesystem() mounts.Filesystem
	Mounter() mounts.Mounter
	MountTable() mounts.Table
	Namespacer() ns.Namespacer
}

//go:generate counterfeiter -o ../fakes/executor.go --fake-name Executor . Executor
type Executor interface {
	Execute(Command) error
	Check(Condition) (bool, error)
}

func New(
	logger lager.Logger,
	filesystem mounts.Filesystem,
	mounter mounts.Mounter,
	mountTable mounts.Table,
	namespacer ns.Namespacer,
) Executor {
	return &executor{
		logger:     logger,
		filesystem: filesystem,
		mounter:    mounter,
		mountTable: mountTable,
		namespacer: namespacer,
	}
}

type executor struct {
	logger     lager.Logger
	filesystem mounts.Filesystem
	mounter    mounts.Mounter
	mountTable mounts.Table
	namespacer ns.Namespacer
}

func (e *executor) Execute(command Command) error {
	return command.Execute(e)
}

func (e *executor) Check(condition Condition) (bool, error) {
	return condition.Satisfied(e)
}

func (e *executor) Logger() lager.Logger {
	return e.logger
}

func (e *executor) Filesystem() mounts.Filesystem {
	return e.filesystem
}

func (e *executor) Mounter() mounts.Mounter {
	return e.mounter
}

func (e *executor) MountTable() mounts.Table {
	return e.mountTable
}

func (e *executor) Namespacer() ns.Namespacer {
	return e.namespacer
}
