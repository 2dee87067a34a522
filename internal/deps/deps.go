// Package deps reports the availability of the external binaries Submix
// shells out to. Both the preflight command and the run pipeline use it
// so the requirements list lives in one place.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary Submix relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists the binaries needed for a full run with the given
// tool commands. Both entries are mandatory; Submix cannot inspect or
// remux anything without them.
func Requirements(ffprobe, ffmpeg string) []Requirement {
	return []Requirement{
		{
			Name:        "FFprobe",
			Command:     ffprobe,
			Description: "Required for stream inspection",
		},
		{
			Name:        "FFmpeg",
			Command:     ffmpeg,
			Description: "Required for subtitle muxing",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
