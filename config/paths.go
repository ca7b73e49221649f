package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Paths struct {
	AnchorDir        string
	AnchorName       string
	LegacyAnchorName string
	AnchorOptions    string

	BridgeDir     string
	BridgeOptions string

	HostNamespace string

	RunMediaDir     string
	MediaDir        string
	StagingName     string
	StoragePoolsDir string

	LogLevel string
}

// Default returns the paths shared with every other release of the snap.
// They are part of the on-disk contract and must not change.
func Default() Paths {
	return Paths{
		AnchorDir:        "/var/snap/lxd/common/ns",
		AnchorName:       "shmounts",
		LegacyAnchorName: "mntns",
		AnchorOptions:    "size=1M,mode=0700",

		BridgeDir:     "/var/snap/lxd/common/shmounts",
		BridgeOptions: "size=1M,mode=0711",

		HostNamespace: "/proc/1/ns/mnt",

		RunMediaDir:     "/run/media",
		MediaDir:        "/media",
		StagingName:     ".lxd-shmounts",
		StoragePoolsDir: "/var/snap/lxd/common/lxd/storage-pools",

		LogLevel: "error",
	}
}

func (p Paths) AnchorPath() string {
	return filepath.Join(p.AnchorDir, p.AnchorName)
}

func (p Paths) LegacyAnchorPath() string {
	return filepath.Join(p.AnchorDir, p.LegacyAnchorName)
}

// BridgeStoragePoolsDir is where storage pool mounts live inside the bridge tree.
func (p Paths) BridgeStoragePoolsDir() string {
	return filepath.Join(p.BridgeDir, filepath.Base(p.StoragePoolsDir))
}

// StagingDir returns the staging mountpoint below the host automount
// directory. Inside the confined namespace the host automount directory is
// always visible at MediaDir.
func (p Paths) StagingDir(runMedia bool) string {
	if runMedia {
		return filepath.Join(p.RunMediaDir, p.StagingName)
	}
	return filepath.Join(p.MediaDir, p.StagingName)
}

func (p Paths) ConfinedStagingDir() string {
	return p.StagingDir(false)
}

// Validate rejects paths the mount choreography cannot work with.
func (p Paths) Validate() error {
	absolute := []struct {
		name  string
		value string
	}{
		{"anchor_dir", p.AnchorDir},
		{"bridge_dir", p.BridgeDir},
		{"host_namespace", p.HostNamespace},
		{"run_media_dir", p.RunMediaDir},
		{"media_dir", p.MediaDir},
		{"storage_pools_dir", p.StoragePoolsDir},
	}

	for _, a := range absolute {
		if a.value == "" {
			return fmt.Errorf("missing required config %q", a.name)
		}
		if !filepath.IsAbs(a.value) {
			return fmt.Errorf("bad config %q: %q is not absolute", a.name, a.value)
		}
	}

	if p.AnchorName == "" {
		return errors.New(`missing required config "anchor_name"`)
	}

	if p.LegacyAnchorName == "" {
		return errors.New(`missing required config "legacy_anchor_name"`)
	}

	if p.AnchorName == p.LegacyAnchorName {
		return errors.New(`bad config "legacy_anchor_name": must differ from "anchor_name"`)
	}

	if p.StagingName == "" {
		return errors.New(`missing required config "staging_name"`)
	}

	if p.AnchorOptions == "" {
		return errors.New(`missing required config "anchor_options"`)
	}

	if p.BridgeOptions == "" {
		return errors.New(`missing required config "bridge_options"`)
	}

	if _, err := ParseLogLevel(p.LogLevel); err != nil {
		return fmt.Errorf(`bad config "log_level": %s`, err)
	}

	return nil
}
