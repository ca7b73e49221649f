package tree_test

import (
	"errors"

	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/executor/conditions"
	"github.com/canonical/lxd-shmounts/fakes"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/tree"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tree", func() {
	var t tree.Tree

	BeforeEach(func() {
		t = tree.Tree{
			Path:    "/var/snap/lxd/common/shmounts",
			Options: "size=1M,mode=0711",
		}
	})

	Describe("Seed", func() {
		It("binds the directory onto itself before stacking a shared tmpfs", func() {
			Expect(t.Seed()).To(Equal(commands.All(
				commands.MakeDir{Path: "/var/snap/lxd/common/shmounts", Mode: 0711},
				commands.BindMount{Source: "/var/snap/lxd/common/shmounts", Target: "/var/snap/lxd/common/shmounts"},
				commands.SetPropagation{Path: "/var/snap/lxd/common/shmounts", Recursive: true},
				commands.MountTmpfs{Target: "/var/snap/lxd/common/shmounts", Options: "size=1M,mode=0711"},
				commands.SetPropagation{Path: "/var/snap/lxd/common/shmounts", Shared: true, Recursive: true},
			)))
		})

		It("issues the mounts in order", func() {
			context := &fakes.Context{}
			mounter := &fakes.Mounter{}
			context.MounterReturns(mounter)
			context.FilesystemReturns(&fakes.Filesystem{})

			calls := []string{}
			mounter.BindStub = func(string, string, bool) error { calls = append(calls, "bind"); return nil }
			mounter.MakePrivateStub = func(string, bool) error { calls = append(calls, "private"); return nil }
			mounter.MountTmpfsStub = func(string, string) error { calls = append(calls, "tmpfs"); return nil }
			mounter.MakeSharedStub = func(string, bool) error { calls = append(calls, "shared"); return nil }

			Expect(t.Seed().Execute(context)).To(Succeed())
			Expect(calls).To(Equal([]string{"bind", "private", "tmpfs", "shared"}))
		})
	})

	Describe("EnsureExists", func() {
		var (
			context    *fakes.Context
			mounter    *fakes.Mounter
			mountTable *fakes.MountTable
		)

		BeforeEach(func() {
			context = &fakes.Context{}
			mounter = &fakes.Mounter{}
			mountTable = &fakes.MountTable{}
			context.MounterReturns(mounter)
			context.MountTableReturns(mountTable)
			context.FilesystemReturns(&fakes.Filesystem{})
		})

		It("seeds unless the path already carries a tmpfs", func() {
			Expect(t.EnsureExists()).To(Equal(commands.Unless{
				Condition: conditions.MountedAs{Path: "/var/snap/lxd/common/shmounts", FSType: "tmpfs"},
				Command:   t.Seed(),
			}))
		})

		Context("when the tree is already mounted", func() {
			BeforeEach(func() {
				mountTable.EntriesReturns([]mounts.Entry{
					{Mountpoint: "/var/snap/lxd/common/shmounts", FSType: "tmpfs"},
				}, nil)
			})

			It("does nothing", func() {
				Expect(t.EnsureExists().Execute(context)).To(Succeed())
				Expect(mounter.MountTmpfsCallCount()).To(Equal(0))
				Expect(mounter.BindCallCount()).To(Equal(0))
			})
		})

		Context("when the tree is missing", func() {
			BeforeEach(func() {
				mountTable.EntriesReturns([]mounts.Entry{
					{Mountpoint: "/", FSType: "ext4"},
				}, nil)
			})

			It("seeds it", func() {
				Expect(t.EnsureExists().Execute(context)).To(Succeed())
				Expect(mounter.MountTmpfsCallCount()).To(Equal(1))
			})
		})

		Context("when the tmpfs cannot be mounted", func() {
			BeforeEach(func() {
				mounter.MountTmpfsReturns(errors.New("operation not permitted"))
			})

			It("returns the failing step", func() {
				err := t.EnsureExists().Execute(context)
				Expect(err).To(MatchError("unless: mount tmpfs on /var/snap/lxd/common/shmounts: operation not permitted"))
			})
		})
	})

	It("marks the tree shared recursively", func() {
		Expect(t.MarkShared()).To(Equal(commands.SetPropagation{
			Path:      "/var/snap/lxd/common/shmounts",
			Shared:    true,
			Recursive: true,
		}))
	})

	It("marks the tree private recursively", func() {
		Expect(t.MarkPrivate()).To(Equal(commands.SetPropagation{
			Path:      "/var/snap/lxd/common/shmounts",
			Recursive: true,
		}))
	})

	It("discards the seed bind with a plain unmount", func() {
		Expect(t.Discard()).To(Equal(commands.Unmount{Path: "/var/snap/lxd/common/shmounts"}))
	})
})
