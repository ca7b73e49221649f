package mounts_test

import (
	"os"
	"path/filepath"

	"github.com/canonical/lxd-shmounts/lib/mounts"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sys/unix"
)

var _ = Describe("LinuxFilesystem", func() {
	var (
		fs      mounts.LinuxFilesystem
		tempDir string
	)

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
	})

	Describe("Mkdir", func() {
		It("creates the directory with the requested mode", func() {
			path := filepath.Join(tempDir, "staging")
			Expect(fs.Mkdir(path, 0700)).To(Succeed())

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0700)))
		})

		It("tolerates an existing directory", func() {
			Expect(fs.Mkdir(tempDir, 0700)).To(Succeed())
		})

		Context("when the parent does not exist", func() {
			It("returns the errno", func() {
				err := fs.Mkdir(filepath.Join(tempDir, "a", "b"), 0700)
				Expect(err).To(Equal(unix.ENOENT))
			})
		})
	})

	Describe("MkdirAll", func() {
		It("creates missing parents", func() {
			path := filepath.Join(tempDir, "a", "b", "c")
			Expect(fs.MkdirAll(path, 0700)).To(Succeed())
			Expect(path).To(BeADirectory())
		})
	})

	Describe("CreateFile", func() {
		It("creates an empty file that can serve as a mountpoint", func() {
			path := filepath.Join(tempDir, "shmounts")
			Expect(fs.CreateFile(path, 0600)).To(Succeed())
			Expect(path).To(BeARegularFile())
		})

		It("keeps an existing file", func() {
			path := filepath.Join(tempDir, "shmounts")
			Expect(os.WriteFile(path, []byte("x"), 0600)).To(Succeed())

			Expect(fs.CreateFile(path, 0600)).To(Succeed())
			Expect(os.ReadFile(path)).To(Equal([]byte("x")))
		})
	})

	Describe("Remove", func() {
		It("removes the path", func() {
			path := filepath.Join(tempDir, "staging")
			Expect(os.Mkdir(path, 0700)).To(Succeed())

			Expect(fs.Remove(path)).To(Succeed())
			Expect(path).NotTo(BeAnExistingFile())
		})

		It("treats a missing path as removed", func() {
			Expect(fs.Remove(filepath.Join(tempDir, "gone"))).To(Succeed())
		})
	})

	Describe("Accessible", func() {
		It("reports searchable directories", func() {
			Expect(fs.Accessible(tempDir)).To(BeTrue())
			Expect(fs.Accessible(filepath.Join(tempDir, "missing"))).To(BeFalse())
		})
	})
})
