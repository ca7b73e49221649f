package config_test

import (
	"bytes"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Paths", func() {
	var paths config.Paths

	BeforeEach(func() {
		paths = config.Default()
	})

	Describe("Default", func() {
		It("matches the paths used by every release of the snap", func() {
			Expect(paths.AnchorPath()).To(Equal("/var/snap/lxd/common/ns/shmounts"))
			Expect(paths.LegacyAnchorPath()).To(Equal("/var/snap/lxd/common/ns/mntns"))
			Expect(paths.BridgeDir).To(Equal("/var/snap/lxd/common/shmounts"))
			Expect(paths.BridgeStoragePoolsDir()).To(Equal("/var/snap/lxd/common/shmounts/storage-pools"))
			Expect(paths.StoragePoolsDir).To(Equal("/var/snap/lxd/common/lxd/storage-pools"))
			Expect(paths.HostNamespace).To(Equal("/proc/1/ns/mnt"))
		})

		It("is valid", func() {
			Expect(paths.Validate()).To(Succeed())
		})
	})

	Describe("StagingDir", func() {
		It("uses /run/media when it is available", func() {
			Expect(paths.StagingDir(true)).To(Equal("/run/media/.lxd-shmounts"))
		})

		It("falls back to /media", func() {
			Expect(paths.StagingDir(false)).To(Equal("/media/.lxd-shmounts"))
		})

		It("is always /media inside the confined namespace", func() {
			Expect(paths.ConfinedStagingDir()).To(Equal("/media/.lxd-shmounts"))
		})
	})

	DescribeTable("Validate",
		func(mutate func(*config.Paths), message string) {
			mutate(&paths)
			Expect(paths.Validate()).To(MatchError(message))
		},
		Entry("missing anchor_dir", func(p *config.Paths) { p.AnchorDir = "" }, `missing required config "anchor_dir"`),
		Entry("relative bridge_dir", func(p *config.Paths) { p.BridgeDir = "shmounts" }, `bad config "bridge_dir": "shmounts" is not absolute`),
		Entry("missing anchor_name", func(p *config.Paths) { p.AnchorName = "" }, `missing required config "anchor_name"`),
		Entry("missing legacy_anchor_name", func(p *config.Paths) { p.LegacyAnchorName = "" }, `missing required config "legacy_anchor_name"`),
		Entry("colliding anchor names", func(p *config.Paths) { p.LegacyAnchorName = p.AnchorName }, `bad config "legacy_anchor_name": must differ from "anchor_name"`),
		Entry("missing staging_name", func(p *config.Paths) { p.StagingName = "" }, `missing required config "staging_name"`),
		Entry("missing anchor_options", func(p *config.Paths) { p.AnchorOptions = "" }, `missing required config "anchor_options"`),
		Entry("missing bridge_options", func(p *config.Paths) { p.BridgeOptions = "" }, `missing required config "bridge_options"`),
		Entry("unknown log_level", func(p *config.Paths) { p.LogLevel = "loud" }, `bad config "log_level": unknown log level "loud"`),
	)

	Describe("ParseLogLevel", func() {
		It("maps names onto lager levels", func() {
			Expect(config.ParseLogLevel("debug")).To(Equal(lager.DEBUG))
			Expect(config.ParseLogLevel("info")).To(Equal(lager.INFO))
			Expect(config.ParseLogLevel("error")).To(Equal(lager.ERROR))
			Expect(config.ParseLogLevel("fatal")).To(Equal(lager.FATAL))
		})

		It("defaults an empty level to error", func() {
			Expect(config.ParseLogLevel("")).To(Equal(lager.ERROR))
		})
	})
})

var _ = Describe("CaptureRequest", func() {
	It("is built from the anchor paths", func() {
		request := config.NewCaptureRequest(config.Default(), "/proc/12/task/13/ns/mnt")
		Expect(request).To(Equal(config.CaptureRequest{
			AnchorDir:     "/var/snap/lxd/common/ns",
			AnchorPath:    "/var/snap/lxd/common/ns/shmounts",
			AnchorOptions: "size=1M,mode=0700",
			NamespacePath: "/proc/12/task/13/ns/mnt",
		}))
	})

	It("round trips through JSON", func() {
		request := config.NewCaptureRequest(config.Default(), "/proc/12/task/13/ns/mnt")

		buffer := &bytes.Buffer{}
		Expect(request.Marshal(buffer)).To(Succeed())

		decoded, err := config.UnmarshalCaptureRequest(buffer)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(request))
	})

	Context("when the request is incomplete", func() {
		It("returns an error", func() {
			_, err := config.UnmarshalCaptureRequest(strings.NewReader(`{"anchor_dir": "/x"}`))
			Expect(err).To(MatchError("incomplete capture request"))
		})
	})
})
