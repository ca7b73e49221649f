package acceptance_test

import (
	"os"
	"os/exec"
	"time"

	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/ns"
	"github.com/canonical/lxd-shmounts/testsupport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("lxd-shmounts", Serial, func() {
	var paths config.Paths

	run := func() *gexec.Session {
		session, err := gexec.Start(exec.Command(binaryPath), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit())
		return session
	}

	mountsAt := func(path string) []mounts.Entry {
		entries, err := mounts.TaskTable{}.Entries()
		Expect(err).NotTo(HaveOccurred())

		found := []mounts.Entry{}
		for _, entry := range entries {
			if entry.Mountpoint == path {
				found = append(found, entry)
			}
		}
		return found
	}

	BeforeEach(func() {
		testsupport.RequireAcceptance()
		paths = config.Default()
	})

	It("exposes the shared tree in the calling namespace", func() {
		session := run()
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Err.Contents()).To(BeEmpty())

		Expect(mountsAt(paths.BridgeDir)).NotTo(BeEmpty())
	})

	It("pins the namespace holding the tree", func() {
		Expect(run().ExitCode()).To(Equal(0))

		handle, err := ns.LinuxNamespacer.GetFromPath(paths.AnchorPath())
		Expect(err).NotTo(HaveOccurred())
		Expect(handle.Close()).To(Succeed())
	})

	It("leaves no staging point behind", func() {
		Expect(run().ExitCode()).To(Equal(0))

		for _, runMedia := range []bool{true, false} {
			_, err := os.Stat(paths.StagingDir(runMedia))
			Expect(os.IsNotExist(err)).To(BeTrue())
		}
	})

	It("retires any legacy namespace", func() {
		Expect(run().ExitCode()).To(Equal(0))

		_, err := ns.LinuxNamespacer.GetFromPath(paths.LegacyAnchorPath())
		Expect(err).To(HaveOccurred())
	})

	Context("when run again", func() {
		It("reuses the anchored namespace", func() {
			Expect(run().ExitCode()).To(Equal(0))

			first, err := os.Stat(paths.AnchorPath())
			Expect(err).NotTo(HaveOccurred())

			Expect(run().ExitCode()).To(Equal(0))

			second, err := os.Stat(paths.AnchorPath())
			Expect(err).NotTo(HaveOccurred())

			Expect(os.SameFile(first, second)).To(BeTrue())
		})
	})
})
