// Package loader obtains the raw i3 config text from a file, a remote URL
// or the live i3 IPC socket. It hands the core a plain string or an opaque
// error and does nothing else.
package loader

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/davidwl/keyhint/pkg/config"
)

// Source yields one config text per call. Repeated calls re-fetch, which is
// what the server's reload action relies on.
type Source func() (string, error)

// FromFile reads the config text from a path on disk.
func FromFile(path string) Source {
	return func() (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("loader: reading %s: %w", path, err)
		}
		return string(data), nil
	}
}

// Pick selects the source per config priority: explicit path, then URL,
// then the live i3 socket.
func Pick(src config.SourceConfig) Source {
	switch {
	case src.Path != "":
		log.Debugf("config source: file %s", src.Path)
		return FromFile(src.Path)
	case src.URL != "":
		log.Debugf("config source: url %s", src.URL)
		return FromURL(src.URL)
	default:
		log.Debug("config source: i3 ipc socket")
		return FromIPC()
	}
}
