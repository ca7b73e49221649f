package commands_test

import (
	"errors"

	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CreateFile", func() {
	var (
		context    *fakes.Context
		filesystem *fakes.Filesystem
		createFile commands.CreateFile
	)

	BeforeEach(func() {
		context = &fakes.Context{}
		filesystem = &fakes.Filesystem{}
		context.FilesystemReturns(filesystem)

		createFile = commands.CreateFile{
			Path: "/var/snap/lxd/common/ns/shmounts",
			Mode: 0600,
		}
	})

	It("creates the file", func() {
		err := createFile.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(filesystem.CreateFileCallCount()).To(Equal(1))
		path, mode := filesystem.CreateFileArgsForCall(0)
		Expect(path).To(Equal("/var/snap/lxd/common/ns/shmounts"))
		Expect(mode).To(BeEquivalentTo(0600))
	})

	Context("when creating the file fails", func() {
		BeforeEach(func() {
			filesystem.CreateFileReturns(errors.New("no space left on device"))
		})

		It("wraps and propagates the error", func() {
			err := createFile.Execute(context)
			Expect(err).To(MatchError("create file /var/snap/lxd/common/ns/shmounts: no space left on device"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(createFile.String()).To(Equal("install -m 0600 /dev/null /var/snap/lxd/common/ns/shmounts"))
		})
	})
})
