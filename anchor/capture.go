package anchor

import (
	"errors"
	"fmt"
	"io"

	"github.com/canonical/lxd-shmounts/config"
	"github.com/canonical/lxd-shmounts/executor"
	"github.com/canonical/lxd-shmounts/executor/commands"
)

// ErrAbandoned is returned when the handshake closes without a byte. The
// caller has already reported why it gave up.
var ErrAbandoned = errors.New("handshake closed without a signal")

// Capture is the body of the helper process. It blocks until the handshake
// delivers one byte, then pins the namespace named by the request onto the
// anchor file.
func Capture(ex executor.Executor, request config.CaptureRequest, handshake io.Reader) error {
	signal := make([]byte, 1)
	if _, err := io.ReadFull(handshake, signal); err != nil {
		if err == io.EOF {
			return ErrAbandoned
		}
		return fmt.Errorf("wait for handshake: %s", err)
	}

	return ex.Execute(Persist(request))
}

// Persist bind-mounts the namespace onto the anchor file, inside a private
// tmpfs so the bind does not propagate into other namespaces.
func Persist(request config.CaptureRequest) executor.Command {
	return commands.All(
		commands.MakeDir{Path: request.AnchorDir, Mode: 0700},
		commands.MountTmpfs{Target: request.AnchorDir, Options: request.AnchorOptions},
		commands.SetPropagation{Path: request.AnchorDir, Recursive: true},
		commands.CreateFile{Path: request.AnchorPath, Mode: 0600},
		commands.BindMount{Source: request.NamespacePath, Target: request.AnchorPath},
	)
}
