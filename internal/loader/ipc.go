package loader

import (
	"fmt"

	"go.i3wm.org/i3/v4"
)

// FromIPC asks the running i3 instance for its config over the IPC socket.
// The socket path is discovered by the i3 package itself ($I3SOCK or
// `i3 --get-socketpath`).
func FromIPC() Source {
	return func() (string, error) {
		cfg, err := i3.GetConfig()
		if err != nil {
			return "", fmt.Errorf("loader: i3 ipc: %w", err)
		}
		return cfg.Config, nil
	}
}
