package handoff_test

import (
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
	"github.com/canonical/lxd-shmounts/executor/conditions"
	"github.com/canonical/lxd-shmounts/fakes"
	"github.com/canonical/lxd-shmounts/handoff"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Choreographer", func() {
	var (
		logger        *lagertest.TestLogger
		ex            *fakes.Executor
		original      *fakes.Handle
		host          *fakes.Handle
		choreographer *handoff.Choreographer
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		ex = &fakes.Executor{}
		original = &fakes.Handle{}
		host = &fakes.Handle{}

		choreographer = &handoff.Choreographer{
			Logger:   logger,
			Paths:    config.Default(),
			Executor: ex,
		}
	})

	It("probes /run/media for search permission", func() {
		Expect(choreographer.Run(original, host)).To(Succeed())

		Expect(ex.CheckCallCount()).To(Equal(1))
		Expect(ex.CheckArgsForCall(0)).To(Equal(conditions.PathAccessible{Path: "/run/media"}))
	})

	Context("when /run/media is accessible", func() {
		BeforeEach(func() {
			ex.CheckReturns(true, nil)
		})

		It("stages below /run/media and always cleans up", func() {
			Expect(choreographer.Run(original, host)).To(Succeed())

			Expect(ex.ExecuteCallCount()).To(Equal(1))
			Expect(ex.ExecuteArgsForCall(0)).To(Equal(commands.Ensure{
				Command: choreographer.Expose("/run/media/.lxd-shmounts", original, host),
				Finally: choreographer.Cleanup("/run/media/.lxd-shmounts", host),
			}))
		})
	})

	Context("when /run/media is not accessible", func() {
		BeforeEach(func() {
			ex.CheckReturns(false, nil)
		})

		It("stages below /media", func() {
			Expect(choreographer.Run(original, host)).To(Succeed())

			Expect(ex.ExecuteArgsForCall(0)).To(Equal(commands.Ensure{
				Command: choreographer.Expose("/media/.lxd-shmounts", original, host),
				Finally: choreographer.Cleanup("/media/.lxd-shmounts", host),
			}))
		})
	})

	Describe("Expose", func() {
		It("binds through the staging point that both namespaces can reach", func() {
			Expect(choreographer.Expose("/run/media/.lxd-shmounts", original, host)).To(Equal(commands.All(
				commands.MakeDir{Path: "/run/media/.lxd-shmounts", Mode: 0700},
				commands.BindMount{Source: "/var/snap/lxd/common/shmounts", Target: "/run/media/.lxd-shmounts", Recursive: true},
				commands.SetNamespace{Name: "original", Handle: original},
				commands.BindMount{Source: "/media/.lxd-shmounts", Target: "/var/snap/lxd/common/shmounts", Recursive: true},
				commands.SetPropagation{Path: "/media/.lxd-shmounts", Recursive: true},
				commands.Unmount{Path: "/media/.lxd-shmounts", Detach: true},
				commands.SetNamespace{Name: "host", Handle: host},
			)))
		})
	})

	Describe("Cleanup", func() {
		It("never fails", func() {
			context := &fakes.Context{}
			context.LoggerReturns(logger)

			namespacer := &fakes.Namespacer{}
			namespacer.SetReturns(errors.New("invalid argument"))
			context.NamespacerReturns(namespacer)

			mounter := &fakes.Mounter{}
			mounter.MakePrivateReturns(errors.New("invalid argument"))
			mounter.DetachReturns(errors.New("invalid argument"))
			context.MounterReturns(mounter)

			filesystem := &fakes.Filesystem{}
			filesystem.RemoveReturns(errors.New("device or resource busy"))
			context.FilesystemReturns(filesystem)

			err := choreographer.Cleanup("/media/.lxd-shmounts", host).Execute(context)
			Expect(err).NotTo(HaveOccurred())

			Expect(namespacer.SetCallCount()).To(Equal(1))
			Expect(mounter.MakePrivateCallCount()).To(Equal(1))
			Expect(mounter.DetachCallCount()).To(Equal(1))
			Expect(filesystem.RemoveCallCount()).To(Equal(1))
		})
	})

	Context("when a step fails", func() {
		BeforeEach(func() {
			ex.ExecuteReturns(&commands.GroupError{Err: errors.New("bind /media/.lxd-shmounts to /var/snap/lxd/common/shmounts: no such file or directory")})
		})

		It("returns the error of the failing step", func() {
			err := choreographer.Run(original, host)
			Expect(err).To(MatchError("bind /media/.lxd-shmounts to /var/snap/lxd/common/shmounts: no such file or directory"))
		})

		It("logs the failure", func() {
			choreographer.Run(original, host)
			Expect(logger).To(gbytes.Say("test.handoff.trace"))
			Expect(logger).To(gbytes.Say("test.handoff.failed"))
		})

		It("prints only the diagnostic line at the default log level", func() {
			level, err := config.ParseLogLevel(config.Default().LogLevel)
			Expect(err).NotTo(HaveOccurred())

			stderr := gbytes.NewBuffer()
			quiet := lager.NewLogger("lxd-shmounts")
			quiet.RegisterSink(lager.NewWriterSink(stderr, level))
			choreographer.Logger = quiet

			err = choreographer.Run(original, host)
			Expect(err).To(HaveOccurred())
			fmt.Fprintf(stderr, "%s\n", err)

			Expect(strings.Split(strings.TrimSuffix(string(stderr.Contents()), "\n"), "\n")).To(Equal([]string{
				"bind /media/.lxd-shmounts to /var/snap/lxd/common/shmounts: no such file or directory",
			}))
		})
	})

	Context("when a step fails after staging was created", func() {
		var executed []string

		BeforeEach(func() {
			executed = []string{}

			context := &fakes.Context{}
			context.LoggerReturns(logger)
			context.FilesystemReturns(&fakes.Filesystem{})
			context.NamespacerReturns(&fakes.Namespacer{})

			mounter := &fakes.Mounter{}
			mounter.BindStub = func(source, target string, _ bool) error {
				executed = append(executed, "bind "+target)
				if target == "/var/snap/lxd/common/shmounts" {
					return errors.New("no such file or directory")
				}
				return nil
			}
			mounter.DetachStub = func(target string) error {
				executed = append(executed, "detach "+target)
				return nil
			}
			context.MounterReturns(mounter)

			ex.ExecuteStub = func(command executor.Command) error {
				return command.Execute(context)
			}
		})

		It("still removes the staging mount", func() {
			err := choreographer.Run(original, host)
			Expect(err).To(MatchError("bind /media/.lxd-shmounts to /var/snap/lxd/common/shmounts: no such file or directory"))

			Expect(executed).To(Equal([]string{
				"bind /media/.lxd-shmounts",
				"bind /var/snap/lxd/common/shmounts",
				"detach /media/.lxd-shmounts",
			}))
		})
	})
})
