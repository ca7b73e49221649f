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

var _ = Describe("BestEffort", func() {
	var (
		context    *fakes.Context
		logger     *lagertest.TestLogger
		command    *fakes.Command
		bestEffort commands.BestEffort
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		context = &fakes.Context{}
		context.LoggerReturns(logger)

		command = &fakes.Command{}
		command.StringReturns("some-command")

		bestEffort = commands.BestEffort{Command: command}
	})

	It("executes the command", func() {
		err := bestEffort.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(command.ExecuteCallCount()).To(Equal(1))
		Expect(command.ExecuteArgsForCall(0)).To(Equal(context))
	})

	Context("when the command fails", func() {
		BeforeEach(func() {
			command.ExecuteReturns(errors.New("busy"))
		})

		It("swallows the error", func() {
			err := bestEffort.Execute(context)
			Expect(err).NotTo(HaveOccurred())
		})

		It("logs the failure", func() {
			bestEffort.Execute(context)

			Expect(logger).To(gbytes.Say("test.best-effort-failed.*some-command.*busy"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(bestEffort.String()).To(Equal("some-command || true"))
		})
	})
})
