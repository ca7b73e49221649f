package commands_test

import (
	"errors"

	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RemoveDir", func() {
	var (
		context    *fakes.Context
		filesystem *fakes.Filesystem
		removeDir  commands.RemoveDir
	)

	BeforeEach(func() {
		context = &fakes.Context{}
		filesystem = &fakes.Filesystem{}
		context.FilesystemReturns(filesystem)

		removeDir = commands.RemoveDir{Path: "/run/media/.lxd-shmounts"}
	})

	It("removes the directory", func() {
		err := removeDir.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(filesystem.RemoveCallCount()).To(Equal(1))
		Expect(filesystem.RemoveArgsForCall(0)).To(Equal("/run/media/.lxd-shmounts"))
	})

	Context("when removing the directory fails", func() {
		BeforeEach(func() {
			filesystem.RemoveReturns(errors.New("device or resource busy"))
		})

		It("wraps and propagates the error", func() {
			err := removeDir.Execute(context)
			Expect(err).To(MatchError("remove directory /run/media/.lxd-shmounts: device or resource busy"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(removeDir.String()).To(Equal("rmdir /run/media/.lxd-shmounts"))
		})
	})
})
