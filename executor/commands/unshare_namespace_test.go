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

var _ = Describe("UnshareNamespace", func() {
	var (
		context    *fakes.Context
		logger     *lagertest.TestLogger
		namespacer *fakes.Namespacer
		unshare    commands.UnshareNamespace
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		namespacer = &fakes.Namespacer{}

		context = &fakes.Context{}
		context.LoggerReturns(logger)
		context.NamespacerReturns(namespacer)

		unshare = commands.UnshareNamespace{}
	})

	It("creates a new mount namespace", func() {
		err := unshare.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(namespacer.UnshareCallCount()).To(Equal(1))
		Expect(logger).To(gbytes.Say("test.unshared"))
	})

	Context("when unsharing fails", func() {
		BeforeEach(func() {
			namespacer.UnshareReturns(errors.New("operation not permitted"))
		})

		It("wraps and propagates the error", func() {
			err := unshare.Execute(context)
			Expect(err).To(MatchError("create mount namespace: operation not permitted"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(unshare.String()).To(Equal("unshare --mount"))
		})
	})
})
