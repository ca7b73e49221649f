package commands_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("SetNamespace", func() {
	var (
		context      *fakes.Context
		logger       *lagertest.TestLogger
		namespacer   *fakes.Namespacer
		handle       *fakes.Handle
		setNamespace commands.SetNamespace
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		namespacer = &fakes.Namespacer{}

		context = &fakes.Context{}
		context.LoggerReturns(logger)
		context.NamespacerReturns(namespacer)

		handle = &fakes.Handle{}
		handle.NameReturns("/proc/1/ns/mnt")

		setNamespace = commands.SetNamespace{
			Name:   "host",
			Handle: handle,
		}
	})

	It("attaches to the namespace", func() {
		err := setNamespace.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(namespacer.SetCallCount()).To(Equal(1))
		Expect(namespacer.SetArgsForCall(0)).To(Equal(handle))
	})

	It("logs the namespace it attached to", func() {
		setNamespace.Execute(context)

		Expect(logger).To(gbytes.Say("test.set-namespace.attached.*mntns-inode.*host"))
	})

	Context("when attaching fails", func() {
		BeforeEach(func() {
			namespacer.SetReturns(errors.New("operation not permitted"))
		})

		It("wraps and propagates the error", func() {
			err := setNamespace.Execute(context)
			Expect(err).To(MatchError("attach to host mount namespace: operation not permitted"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(setNamespace.String()).To(Equal("nsenter --mount=/proc/1/ns/mnt"))
		})
	})
})
