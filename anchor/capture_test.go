package anchor_test

import (
	"errors"
	"strings"
	"testing/iotest"

	"github.com/canonical/lxd-shmounts/anchor"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Capture", func() {
	var (
		ex      *fakes.Executor
		request config.CaptureRequest
	)

	BeforeEach(func() {
		ex = &fakes.Executor{}
		request = config.CaptureRequest{
			AnchorDir:     "/var/snap/lxd/common/ns",
			AnchorPath:    "/var/snap/lxd/common/ns/shmounts",
			AnchorOptions: "size=1M,mode=0700",
			NamespacePath: "/proc/42/task/43/ns/mnt",
		}
	})

	It("pins the namespace onto the anchor file once signalled", func() {
		err := anchor.Capture(ex, request, strings.NewReader("x"))
		Expect(err).NotTo(HaveOccurred())

		Expect(ex.ExecuteCallCount()).To(Equal(1))
		Expect(ex.ExecuteArgsForCall(0)).To(Equal(anchor.Persist(request)))
	})

	Context("when the handshake is closed without a byte", func() {
		It("gives up without touching the anchor", func() {
			err := anchor.Capture(ex, request, strings.NewReader(""))
			Expect(err).To(Equal(anchor.ErrAbandoned))
			Expect(ex.ExecuteCallCount()).To(Equal(0))
		})
	})

	Context("when reading the handshake fails", func() {
		It("returns the error", func() {
			err := anchor.Capture(ex, request, iotest.ErrReader(errors.New("bad file descriptor")))
			Expect(err).To(MatchError("wait for handshake: bad file descriptor"))
			Expect(ex.ExecuteCallCount()).To(Equal(0))
		})
	})

	Context("when persisting fails", func() {
		BeforeEach(func() {
			ex.ExecuteReturns(errors.New("mount tmpfs on /var/snap/lxd/common/ns: operation not permitted"))
		})

		It("returns the error", func() {
			err := anchor.Capture(ex, request, strings.NewReader("x"))
			Expect(err).To(MatchError("mount tmpfs on /var/snap/lxd/common/ns: operation not permitted"))
		})
	})

	Describe("Persist", func() {
		It("binds the namespace inside a private tmpfs", func() {
			Expect(anchor.Persist(request)).To(Equal(commands.All(
				commands.MakeDir{Path: "/var/snap/lxd/common/ns", Mode: 0700},
				commands.MountTmpfs{Target: "/var/snap/lxd/common/ns", Options: "size=1M,mode=0700"},
				commands.SetPropagation{Path: "/var/snap/lxd/common/ns", Recursive: true},
				commands.CreateFile{Path: "/var/snap/lxd/common/ns/shmounts", Mode: 0600},
				commands.BindMount{Source: "/proc/42/task/43/ns/mnt", Target: "/var/snap/lxd/common/ns/shmounts"},
			)))
		})
	})
})
