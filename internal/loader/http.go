package loader

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpTimeout bounds a remote fetch so a dead host cannot hang startup.
const httpTimeout = 10 * time.Second

// FromURL fetches the config text over HTTP(S). Dotfile repos served raw
// are the expected target.
func FromURL(url string) Source {
	client := &http.Client{Timeout: httpTimeout}
	return func() (string, error) {
		resp, err := client.Get(url)
		if err != nil {
			return "", fmt.Errorf("loader: fetching %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("loader: fetching %s: unexpected status %s", url, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("loader: reading body of %s: %w", url, err)
		}
		return string(data), nil
	}
}
