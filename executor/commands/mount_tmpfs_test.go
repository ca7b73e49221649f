package commands_test

import (
	"errors"

	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MountTmpfs", func() {
	var (
		context    *fakes.Context
		mounter    *fakes.Mounter
		mountTmpfs commands.MountTmpfs
	)

	BeforeEach(func() {
		context = &fakes.Context{}
		mounter = &fakes.Mounter{}
		context.MounterReturns(mounter)

		mountTmpfs = commands.MountTmpfs{
			Target:  "/var/snap/lxd/common/shmounts",
			Options: "size=1M,mode=0711",
		}
	})

	It("mounts a tmpfs on the target", func() {
		err := mountTmpfs.Execute(context)
		Expect(err).NotTo(HaveOccurred())

		Expect(mounter.MountTmpfsCallCount()).To(Equal(1))
		target, options := mounter.MountTmpfsArgsForCall(0)
		Expect(target).To(Equal("/var/snap/lxd/common/shmounts"))
		Expect(options).To(Equal("size=1M,mode=0711"))
	})

	Context("when mounting fails", func() {
		BeforeEach(func() {
			mounter.MountTmpfsReturns(errors.New("operation not permitted"))
		})

		It("wraps and propagates the error", func() {
			err := mountTmpfs.Execute(context)
			Expect(err).To(MatchError("mount tmpfs on /var/snap/lxd/common/shmounts: operation not permitted"))
		})
	})

	Describe("String", func() {
		It("is self describing", func() {
			Expect(mountTmpfs.String()).To(Equal("mount -t tmpfs -o size=1M,mode=0711 tmpfs /var/snap/lxd/common/shmounts"))
		})
	})
})
