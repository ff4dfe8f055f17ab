package cli

import (
	"fmt"

	"github.com/strikerhq/striker/internal/daemon"
)

// openDaemon wires the full runtime (config, storage, catalog, store)
// for one-shot commands. Caller must Close it.
func openDaemon() (*daemon.Daemon, error) {
	d, err := daemon.New()
	if err != nil {
		return nil, fmt.Errorf("initialize striker: %w", err)
	}
	return d, nil
}

// pct renders a percentage with one decimal place.
func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
