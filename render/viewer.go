package render

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ============================================================================
// VIEWER — Hand the saved image to the desktop's default application
// ============================================================================

var execCommand = exec.Command

// OpenViewer opens path with the platform viewer and returns once it has
// started. The viewer is not waited on.
func OpenViewer(path string) error {
	name, args := viewerCommand(runtime.GOOS, path)
	cmd := execCommand(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, name, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
