package commands_test

import (
	"errors"

	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ensure", func() {
	var (
		context *fakes.Context
		command *fakes.Command
		finally *fakes.Command
		ensure  commands.Ensure
	)

	BeforeEach(func() {
		context = &fakes.Context{}

		command = &fakes.Command{}
		command.StringReturns("command")

		finally = &fakes.Command{}
		finally.StringReturns("finally")

		ensure = commands.Ensure{
			Command: command,
			Finally: finally,
		}
	})

	It("executes the command and then the cleanup", func() {
		err := ensure.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(command.ExecuteCallCount()).To(Equal(1))
		Expect(command.ExecuteArgsForCall(0)).To(Equal(context))
		Expect(finally.ExecuteCallCount()).To(Equal(1))
		Expect(finally.ExecuteArgsForCall(0)).To(Equal(context))
	})

	Context("when the command fails", func() {
		BeforeEach(func() {
			command.ExecuteReturns(errors.New("potato"))
		})

		It("still executes the cleanup", func() {
			ensure.Execute(context)
			Expect(finally.ExecuteCallCount()).To(Equal(1))
		})

		It("returns the error of the command", func() {
			err := ensure.Execute(context)
			Expect(err).To(MatchError("potato"))
		})

		Context("when the cleanup fails too", func() {
			BeforeEach(func() {
				finally.ExecuteReturns(errors.New("tomato"))
			})

			It("returns the error of the command", func() {
				err := ensure.Execute(context)
				Expect(err).To(MatchError("potato"))
			})
		})
	})

	Context("when only the cleanup fails", func() {
		BeforeEach(func() {
			finally.ExecuteReturns(errors.New("tomato"))
		})

		It("wraps and propagates the error", func() {
			err := ensure.Execute(context)
			Expect(err).To(MatchError("cleanup: tomato"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(ensure.String()).To(Equal("command; finally"))
		})
	})
})
