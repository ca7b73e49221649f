package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/canonical/lxd-shmounts/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	It("rejects positional arguments", func() {
		session, err := gexec.Start(exec.Command(binaryPath, "potato"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say(`unknown command "potato" for "lxd-shmounts"`))
	})

	Context("when not running as root", func() {
		BeforeEach(func() {
			if os.Geteuid() == 0 {
				Skip("requires an unprivileged user")
			}
		})

		It("fails with a single diagnostic line", func() {
			session, err := gexec.Start(exec.Command(binaryPath), GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(strings.Count(string(session.Err.Contents()), "\n")).To(Equal(1))
			Expect(session.Err).To(gbytes.Say(`mount namespace: `))
		})
	})

	Describe("capture-namespace", func() {
		var cmd *exec.Cmd

		BeforeEach(func() {
			cmd = exec.Command(binaryPath, "capture-namespace")
		})

		Context("when the request is malformed", func() {
			BeforeEach(func() {
				cmd.Stdin = strings.NewReader("{")
			})

			It("fails", func() {
				session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("read capture request: json decode: "))
			})
		})

		Context("when the handshake closes without a byte", func() {
			var reader, writer *os.File

			BeforeEach(func() {
				request := config.NewCaptureRequest(config.Default(), "/proc/self/ns/mnt")
				stdin := &bytes.Buffer{}
				Expect(request.Marshal(stdin)).To(Succeed())
				cmd.Stdin = stdin

				var err error
				reader, writer, err = os.Pipe()
				Expect(err).NotTo(HaveOccurred())
				cmd.ExtraFiles = []*os.File{reader}
			})

			It("exits quietly, leaving the diagnostic to the caller", func() {
				session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())
				reader.Close()
				writer.Close()

				Eventually(session).Should(gexec.Exit(1))
				Expect(session.Err.Contents()).To(BeEmpty())
			})
		})
	})
})
