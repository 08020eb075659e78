package shortcut

import (
	"os/exec"

	"deskcut/internal/logger"
)

// postStep is one best-effort finishing touch applied to a built bundle.
// Steps run in sequence; a failing step is logged and never aborts the build.
type postStep struct {
	name string
	args []string
}

// postProcess clears the download-quarantine marking on the bundle and, for
// GUI shortcuts, ad-hoc signs it so macOS permission prompts can associate a
// stable identity across relaunches. Both invocations are synchronous, their
// output is discarded, and any failure (tool missing, non-zero exit) only
// degrades first-launch UX.
func postProcess(bundlePath string, gui bool) {
	steps := []postStep{
		{name: "clear quarantine", args: []string{"xattr", "-cr", bundlePath}},
	}
	if gui {
		steps = append(steps, postStep{
			name: "ad-hoc sign",
			args: []string{"codesign", "--force", "--deep", "--sign", "-", bundlePath},
		})
	}

	for _, step := range steps {
		cmd := exec.Command(step.args[0], step.args[1:]...)
		if output, err := cmd.CombinedOutput(); err != nil {
			logger.Debug("[DEBUG] Post-processing step %q failed: %v\nOutput: %s\n", step.name, err, output)
		} else {
			logger.Debug("[DEBUG] Post-processing step %q done\n", step.name)
		}
	}
}
