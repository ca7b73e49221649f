package handoff

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/executor/conditions"
	"github.com/canonical/lxd-shmounts/lib/ns"
)

// Choreographer carries the shared tree from the anchor namespace into the
// original one. Neither namespace can see the other's mounts, so the tree is
// staged below the host automount directory, which the confinement exposes
// at /media.
type Choreographer struct {
	Logger   lager.Logger
	Paths    config.Paths
	Executor executor.Executor
}

// Run must be called attached to the anchor namespace. It returns attached
// to host.
func (c *Choreographer) Run(original, host ns.Handle) error {
	logger := c.Logger.Session("handoff")

	runMedia, err := c.Executor.Check(conditions.PathAccessible{Path: c.Paths.RunMediaDir})
	if err != nil {
		return err
	}

	staging := c.Paths.StagingDir(runMedia)
	logger.Debug("staging", lager.Data{"path": staging})

	err = c.Executor.Execute(commands.Ensure{
		Command: c.Expose(staging, original, host),
		Finally: c.Cleanup(staging, host),
	})
	if err != nil {
		var groupErr *commands.GroupError
		if errors.As(err, &groupErr) {
			logger.Debug("trace", lager.Data{"trace": groupErr.Trace()})
		}
		logger.Debug("failed", lager.Data{"error": err.Error()})
		return err
	}

	logger.Info("complete")

	return nil
}

func (c *Choreographer) Expose(staging string, original, host ns.Handle) executor.Command {
	confined := c.Paths.ConfinedStagingDir()

	return commands.All(
		commands.MakeDir{Path: staging, Mode: 0700},
		commands.BindMount{Source: c.Paths.BridgeDir, Target: staging, Recursive: true},
		commands.SetNamespace{Name: "original", Handle: original},
		commands.BindMount{Source: confined, Target: c.Paths.BridgeDir, Recursive: true},
		commands.SetPropagation{Path: confined, Recursive: true},
		commands.Unmount{Path: confined, Detach: true},
		commands.SetNamespace{Name: "host", Handle: host},
	)
}

// Cleanup removes the staging point from the host side. The mount may
// already be gone, so every step is best effort.
func (c *Choreographer) Cleanup(staging string, host ns.Handle) executor.Command {
	return commands.All(
		commands.BestEffort{Command: commands.SetNamespace{Name: "host", Handle: host}},
		commands.BestEffort{Command: commands.SetPropagation{Path: staging, Recursive: true}},
		commands.BestEffort{Command: commands.Unmount{Path: staging, Detach: true}},
		commands.BestEffort{Command: commands.RemoveDir{Path: staging}},
	)
}
