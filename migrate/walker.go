package migrate

import (
	"fmt"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/namespace"
	"github.com/canonical/lxd-shmounts/lib/ns"
)

// Walker relocates the storage pool mounts of a legacy namespace into the
// original one, passing them through the shared tree.
type Walker struct {
	Logger     lager.Logger
	Paths      config.Paths
	Executor   executor.Executor
	Table      mounts.Table
	Repository namespace.Repository
}

// Scan lists the mounts strictly below root in the namespace the calling
// thread is attached to, relative to root.
func (w *Walker) Scan(root string) ([]string, error) {
	entries, err := w.Table.Entries()
	if err != nil {
		return nil, fmt.Errorf("read mount table: %s", err)
	}

	return mounts.Descendants(entries, root), nil
}

// Export moves every subpath from the storage pools root into the shared
// tree. A failing entry is logged and skipped.
func (w *Walker) Export(subpaths []string) {
	logger := w.Logger.Session("export")

	for _, sub := range subpaths {
		source := filepath.Join(w.Paths.StoragePoolsDir, sub)
		target := filepath.Join(w.Paths.BridgeStoragePoolsDir(), sub)
		data := lager.Data{"source": source, "target": target}

		err := w.Executor.Execute(commands.All(
			commands.MakeDir{Path: target, Mode: 0700, Parents: true},
			commands.MoveMount{Source: source, Target: target},
		))
		if err != nil {
			logger.Error("entry-failed", err, data)
			continue
		}

		logger.Debug("moved", data)
	}
}

// Import binds every subpath from the shared tree back below the storage
// pools root, then drops the copy left in the tree.
func (w *Walker) Import(subpaths []string) {
	logger := w.Logger.Session("import")

	for _, sub := range subpaths {
		source := filepath.Join(w.Paths.BridgeStoragePoolsDir(), sub)
		target := filepath.Join(w.Paths.StoragePoolsDir, sub)
		data := lager.Data{"source": source, "target": target}

		err := w.Executor.Execute(commands.All(
			commands.MakeDir{Path: target, Mode: 0700, Parents: true},
			commands.BindMount{Source: source, Target: target, Recursive: true},
			commands.Unmount{Path: source, Detach: true},
		))
		if err != nil {
			logger.Error("entry-failed", err, data)
			continue
		}

		logger.Debug("imported", data)
	}
}

// Run must be called with the legacy anchor present. It returns attached to
// host, with the legacy anchor retired.
func (w *Walker) Run(legacy, original, host ns.Handle) error {
	logger := w.Logger.Session("migrate")
	poolsRoot := w.Paths.StoragePoolsDir

	logger.Info("starting")

	err := w.Executor.Execute(commands.SetNamespace{Name: "legacy", Handle: legacy})
	if err != nil {
		return err
	}

	w.Executor.Execute(commands.BestEffort{Command: commands.SetPropagation{Path: poolsRoot, Recursive: true}})

	exported, err := w.Scan(poolsRoot)
	if err != nil {
		return err
	}

	logger.Info("exporting", lager.Data{"count": len(exported)})
	w.Export(exported)

	w.Executor.Execute(commands.BestEffort{Command: commands.SetPropagation{Path: poolsRoot, Shared: true, Recursive: true}})

	err = w.Executor.Execute(commands.All(
		commands.SetNamespace{Name: "original", Handle: original},
		commands.BestEffort{Command: commands.SetPropagation{Path: poolsRoot, Shared: true, Recursive: true}},
	))
	if err != nil {
		return err
	}

	imported, err := w.Scan(w.Paths.BridgeStoragePoolsDir())
	if err != nil {
		return err
	}

	logger.Info("importing", lager.Data{"count": len(imported)})
	w.Import(imported)

	err = w.Executor.Execute(commands.SetNamespace{Name: "host", Handle: host})
	if err != nil {
		return err
	}

	err = w.Repository.Destroy(w.Paths.LegacyAnchorName)
	if err != nil {
		return fmt.Errorf("retire legacy namespace: %s", err)
	}

	logger.Info("complete")

	return nil
}
