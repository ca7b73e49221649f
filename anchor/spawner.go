package anchor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/canonical/lxd-shmounts/config"
)

const CaptureCommand = "capture-namespace"

//go:generate counterfeiter -o ../fakes/spawner.go --fake-name Spawner . Spawner
type Spawner interface {
	Spawn(request config.CaptureRequest, handshake *os.File) (Helper, error)
}

//go:generate counterfeiter -o ../fakes/helper.go --fake-name Helper . Helper
type Helper interface {
	Wait() error
}

// ExecSpawner starts the helper as a child of the calling thread, so it is
// born in whatever mount namespace that thread is attached to. The handshake
// becomes file descriptor 3 of the child.
type ExecSpawner struct {
	Path   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{
		Path:   "/proc/self/exe",
		Args:   []string{CaptureCommand},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (s *ExecSpawner) Spawn(request config.CaptureRequest, handshake *os.File) (Helper, error) {
	stdin := &bytes.Buffer{}
	if err := request.Marshal(stdin); err != nil {
		return nil, err
	}

	cmd := exec.Command(s.Path, s.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.ExtraFiles = []*os.File{handshake}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %s", s.Path, err)
	}

	return cmd, nil
}
