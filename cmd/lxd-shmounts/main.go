package main

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/anchor"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/handoff"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/namespace"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"github.com/canonical/lxd-shmounts/migrate"
	"github.com/canonical/lxd-shmounts/shmounts"
	"github.com/canonical/lxd-shmounts/threading"
	"github.com/canonical/lxd-shmounts/tree"
	"github.com/spf13/cobra"
)

// handshakeFd is where the capture helper finds the read end of the
// handshake pipe.
const handshakeFd = 3

var rootCmd = &cobra.Command{
	Use:           "lxd-shmounts",
	Short:         "Expose the LXD shared mount tree in the calling mount namespace",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetup,
}

var captureCmd = &cobra.Command{
	Use:    anchor.CaptureCommand,
	Short:  "Pin a mount namespace onto the anchor file",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, anchor.ErrAbandoned) {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
		os.Exit(1)
	}
}

func loadPaths() (config.Paths, error) {
	paths := config.Default()

	err := paths.Validate()
	if err != nil {
		return config.Paths{}, err
	}

	return paths, nil
}

func newLogger(paths config.Paths) (lager.Logger, error) {
	level, err := config.ParseLogLevel(paths.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger("lxd-shmounts")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, level))

	return logger, nil
}

func newExecutor(logger lager.Logger) executor.Executor {
	return executor.New(
		logger,
		mounts.LinuxFilesystem{},
		mounts.LinuxMounter{},
		mounts.TaskTable{},
		ns.LinuxNamespacer,
	)
}

func runSetup(cmd *cobra.Command, args []string) error {
	paths, err := loadPaths()
	if err != nil {
		return err
	}

	logger, err := newLogger(paths)
	if err != nil {
		return err
	}

	ex := newExecutor(logger)
	repository := namespace.NewRepository(
		logger,
		paths.AnchorDir,
		ns.LinuxNamespacer,
		mounts.LinuxMounter{},
		mounts.LinuxFilesystem{},
	)
	bridge := tree.Tree{Path: paths.BridgeDir, Options: paths.BridgeOptions}

	setup := &shmounts.Setup{
		Logger:     logger,
		Paths:      paths,
		Namespacer: ns.LinuxNamespacer,
		Executor:   ex,
		Repository: repository,
		Tree:       bridge,
		Anchor: &anchor.Anchor{
			Logger:     logger,
			Paths:      paths,
			Repository: repository,
			Executor:   ex,
			Spawner:    anchor.NewExecSpawner(),
			Tree:       bridge,
		},
		Handoff: &handoff.Choreographer{
			Logger:   logger,
			Paths:    paths,
			Executor: ex,
		},
		Migrator: &migrate.Walker{
			Logger:     logger,
			Paths:      paths,
			Executor:   ex,
			Table:      mounts.TaskTable{},
			Repository: repository,
		},
	}

	return threading.NewIsolated().Run(setup.Run)
}

func runCapture(cmd *cobra.Command, args []string) error {
	paths, err := loadPaths()
	if err != nil {
		return err
	}

	logger, err := newLogger(paths)
	if err != nil {
		return err
	}

	request, err := config.UnmarshalCaptureRequest(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read capture request: %s", err)
	}

	handshake := os.NewFile(handshakeFd, "handshake")
	defer handshake.Close()

	return anchor.Capture(newExecutor(logger.Session("capture")), request, handshake)
}
