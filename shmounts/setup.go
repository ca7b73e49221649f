package shmounts

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/executor/conditions"
	"github.com/canonical/lxd-shmounts/lib/debug"
	"github.com/canonical/lxd-shmounts/lib/namespace"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"github.com/canonical/lxd-shmounts/tree"
)

//go:generate counterfeiter -o ../fakes/anchor.go --fake-name Anchor . Anchor
type Anchor interface {
	Ensure(host ns.Handle) (ns.Handle, bool, error)
}

//go:generate counterfeiter -o ../fakes/handoff.go --fake-name Handoff . Handoff
type Handoff interface {
	Run(original, host ns.Handle) error
}

//go:generate counterfeiter -o ../fakes/migrator.go --fake-name Migrator . Migrator
type Migrator interface {
	Run(legacy, original, host ns.Handle) error
}

// Setup makes the shared tree of the anchored namespace visible in the mount
// namespace of the calling thread, creating the anchor on first use and
// migrating storage pools out of a legacy namespace when one is left over.
type Setup struct {
	Logger     lager.Logger
	Paths      config.Paths
	Namespacer ns.Namespacer
	Executor   executor.Executor
	Repository namespace.Repository
	Anchor     Anchor
	Tree       tree.Tree
	Handoff    Handoff
	Migrator   Migrator
}

func (s *Setup) Run() error {
	logger := s.Logger.Session("setup")
	logger.Info("starting", debug.MntNS())

	original, err := s.Namespacer.GetFromPath(ns.TaskPath())
	if err != nil {
		return fmt.Errorf("open current mount namespace: %s", err)
	}
	defer original.Close()

	host, err := s.Namespacer.GetFromPath(s.Paths.HostNamespace)
	if err != nil {
		return fmt.Errorf("open host mount namespace: %s", err)
	}
	defer host.Close()

	err = s.Executor.Execute(commands.SetNamespace{Name: "host", Handle: host})
	if err != nil {
		return err
	}

	anchor, created, err := s.Anchor.Ensure(host)
	if err != nil {
		return err
	}
	defer anchor.Close()

	err = s.Executor.Execute(s.Tree.EnsureExists())
	if err != nil {
		return err
	}

	err = s.Executor.Execute(s.Tree.MarkShared())
	if err != nil {
		return err
	}

	err = s.Handoff.Run(original, host)
	if err != nil {
		return err
	}

	err = s.migrate(logger, original, host)
	if err != nil {
		return err
	}

	logger.Info("complete", lager.Data{"bootstrapped": created})

	return nil
}

func (s *Setup) migrate(logger lager.Logger, original, host ns.Handle) error {
	exists, err := s.Executor.Check(conditions.NamespaceExists{
		Name:       s.Paths.LegacyAnchorName,
		Repository: s.Repository,
	})
	if err != nil {
		return err
	}

	if !exists {
		logger.Debug("no-legacy-namespace")
		return nil
	}

	legacy, err := s.Repository.Get(s.Paths.LegacyAnchorName)
	if err != nil {
		return fmt.Errorf("open legacy mount namespace: %s", err)
	}
	defer legacy.Close()

	return s.Migrator.Run(legacy, original, host)
}
