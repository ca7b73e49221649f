package anchor

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/lib/namespace"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"github.com/canonical/lxd-shmounts/tree"
)

// Anchor keeps a mount namespace alive across runs by pinning it onto a
// file. The first run creates the namespace and seeds the shared tree in it;
// later runs reattach.
type Anchor struct {
	Logger     lager.Logger
	Paths      config.Paths
	Repository namespace.Repository
	Executor   executor.Executor
	Spawner    Spawner
	Tree       tree.Tree
}

// Ensure must be called attached to the host namespace. On success the
// calling thread is attached to the anchored namespace; the returned bool
// reports whether this call created it.
func (a *Anchor) Ensure(host ns.Handle) (ns.Handle, bool, error) {
	logger := a.Logger.Session("ensure-anchor", lager.Data{
		"path": a.Repository.PathOf(a.Paths.AnchorName),
	})

	handle, err := a.attach()
	if err == nil {
		logger.Info("reattached")
		return handle, false, nil
	}

	logger.Info("bootstrapping", lager.Data{"reason": err.Error()})

	err = a.bootstrap(logger, host)
	if err != nil {
		logger.Debug("bootstrap-failed", lager.Data{"error": err.Error()})
		return nil, false, err
	}

	handle, err = a.attach()
	if err != nil {
		return nil, false, err
	}

	logger.Info("bootstrapped")

	return handle, true, nil
}

func (a *Anchor) attach() (ns.Handle, error) {
	handle, err := a.Repository.Get(a.Paths.AnchorName)
	if err != nil {
		return nil, fmt.Errorf("open anchor: %s", err)
	}

	err = a.Executor.Execute(commands.SetNamespace{Name: "anchor", Handle: handle})
	if err != nil {
		handle.Close()
		return nil, err
	}

	return handle, nil
}

func (a *Anchor) bootstrap(logger lager.Logger, host ns.Handle) error {
	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create handshake pipe: %s", err)
	}

	request := config.NewCaptureRequest(a.Paths, ns.TaskPath())

	helper, err := a.Spawner.Spawn(request, reader)
	reader.Close()
	if err != nil {
		writer.Close()
		return fmt.Errorf("spawn capture helper: %s", err)
	}

	logger.Debug("spawned-helper", lager.Data{"namespace": request.NamespacePath})

	err = a.Executor.Execute(commands.UnshareNamespace{})
	if err != nil {
		writer.Close()
		reap(logger, helper)
		return err
	}

	_, err = writer.Write([]byte{0})
	writer.Close()
	if err != nil {
		reap(logger, helper)
		return fmt.Errorf("signal capture helper: %s", err)
	}

	seedErr := a.Executor.Execute(a.Tree.Seed())

	err = helper.Wait()
	if err != nil {
		return fmt.Errorf("capture namespace: %s", err)
	}

	if seedErr != nil {
		return fmt.Errorf("seed shared tree: %s", seedErr)
	}

	return a.Executor.Execute(commands.All(
		commands.SetNamespace{Name: "host", Handle: host},
		a.Tree.Discard(),
	))
}

func reap(logger lager.Logger, helper Helper) {
	if err := helper.Wait(); err != nil {
		logger.Debug("helper-exited", lager.Data{"error": err.Error()})
	}
}
