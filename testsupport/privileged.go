package testsupport

import (
	"os"

	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"github.com/canonical/lxd-shmounts/threading"
	. "github.com/onsi/ginkgo/v2"
)

const AcceptanceEnv = "LXD_SHMOUNTS_ACCEPTANCE"

// RequireRoot skips the current test unless it runs with an effective uid
// of 0.
func RequireRoot(reason string) {
	if os.Geteuid() != 0 {
		Skip(reason)
	}
}

// RequireAcceptance skips the current test unless the host may be modified.
func RequireAcceptance() {
	RequireRoot("acceptance tests mount below /var/snap/lxd and require root")

	if os.Getenv(AcceptanceEnv) != "1" {
		Skip("set " + AcceptanceEnv + "=1 to run acceptance tests")
	}
}

// InPrivateNamespace runs callback on an isolated thread attached to a fresh
// mount namespace with private propagation, so nothing leaks into the
// namespace running the suite.
func InPrivateNamespace(callback func() error) error {
	return threading.NewIsolated().Run(func() error {
		if err := ns.LinuxNamespacer.Unshare(); err != nil {
			return err
		}
		if err := (mounts.LinuxMounter{}).MakePrivate("/", true); err != nil {
			return err
		}
		return callback()
	})
}
