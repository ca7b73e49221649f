package namespace

import (
	"fmt"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"github.com/canonical/lxd-shmounts/lib/mounts"
	"github.com/canonical/lxd-shmounts/lib/ns"
)

// Repository holds anchors: files with a namespace reference bind-mounted
// onto them, so the namespace outlives the process that created it.
//
//go:generate counterfeiter -o ../../fakes/repository.go --fake-name Repository . Repository
type Repository interface {
	Get(name string) (ns.Handle, error)
	Destroy(name string) error
	PathOf(name string) string
}

type repository struct {
	logger     lager.Logger
	root       string
	namespacer ns.Namespacer
	mounter    mounts.Mounter
	filesystem mounts.Filesystem
}

func NewRepository(
	logger lager.Logger,
	root string,
	namespacer ns.Namespacer,
	mounter mounts.Mounter,
	filesystem mounts.Filesystem,
) Repository {
	return &repository{
		logger:     logger,
		root:       root,
		namespacer: namespacer,
		mounter:    mounter,
		filesystem: filesystem,
	}
}

func (r *repository) Get(name string) (ns.Handle, error) {
	logger := r.logger.Session("get", lager.Data{"name": name})

	handle, err := r.namespacer.GetFromPath(r.PathOf(name))
	if err != nil {
		logger.Debug("open-failed", lager.Data{"error": err.Error()})
		return nil, err
	}

	logger.Debug("complete", lager.Data{"namespace": Describe(handle)})

	return handle, nil
}

func (r *repository) PathOf(name string) string {
	return filepath.Join(r.root, name)
}

// Destroy lazily detaches the anchor and removes its file, so that the
// anchor is no longer found by Get.
func (r *repository) Destroy(name string) error {
	logger := r.logger.Session("destroy", lager.Data{"name": name})
	path := r.PathOf(name)

	logger.Info("destroying", lager.Data{"path": path})

	if err := r.mounter.Detach(path); err != nil {
		logger.Debug("detach-failed", lager.Data{"error": err.Error()})
		return fmt.Errorf("unmount %s: %s", path, err)
	}

	if err := r.filesystem.Remove(path); err != nil {
		logger.Debug("remove-failed", lager.Data{"error": err.Error()})
		return fmt.Errorf("remove %s: %s", path, err)
	}

	return nil
}
