package tree

import (
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/executor/conditions"
)

// Tree is the tmpfs at Path whose propagation is shared with every
// namespace that binds it.
type Tree struct {
	Path    string
	Options string
}

// Seed builds the tree in a namespace freshly created from the host one.
// The directory is bound onto itself first so that making it private does
// not change the propagation of its parent mount.
func (t Tree) Seed() executor.Command {
	return commands.All(
		commands.MakeDir{Path: t.Path, Mode: 0711},
		commands.BindMount{Source: t.Path, Target: t.Path},
		t.MarkPrivate(),
		commands.MountTmpfs{Target: t.Path, Options: t.Options},
		t.MarkShared(),
	)
}

func (t Tree) EnsureExists() executor.Command {
	return commands.Unless{
		Condition: conditions.MountedAs{Path: t.Path, FSType: "tmpfs"},
		Command:   t.Seed(),
	}
}

func (t Tree) MarkShared() executor.Command {
	return commands.SetPropagation{Path: t.Path, Shared: true, Recursive: true}
}

func (t Tree) MarkPrivate() executor.Command {
	return commands.SetPropagation{Path: t.Path, Recursive: true}
}

// Discard removes the self bind that Seed leaves behind in the namespace it
// was copied from.
func (t Tree) Discard() executor.Command {
	return commands.Unmount{Path: t.Path}
}
