package checks

import "io"

// ModeSmoke is the abbreviated gate profile: same checks, no test run.
const ModeSmoke = "smoke"

// DefaultDirs is the directory set every directory-scoped tool receives.
// Smoke and full profiles use the same set.
var DefaultDirs = []string{
	"config",
	"seminars",
	"admin_utils",
	"core_utils",
	"lab_5_scrapper",
}

// TestTagExpression selects the tests the full profile runs.
const TestTagExpression = "mark10 and lab_5_scrapper"

// NewGate assembles the precommit battery. selfExe is the path of this
// binary, used for the two project-local checker steps. mode == ModeSmoke
// drops the trailing filtered test run; every other mode keeps it.
func NewGate(mode string, dirs []string, selfExe string, stdout, stderr io.Writer) *Battery {
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}

	steps := []Step{
		{Name: "format", Command: "python", Args: append([]string{"-m", "black", "--check"}, dirs...)},
		{Name: "lint", Command: "python", Args: append([]string{"-m", "pylint"}, dirs...)},
		{Name: "typecheck", Command: "python", Args: append([]string{"-m", "mypy"}, dirs...)},
		{Name: "docstrings", Command: selfExe, Args: []string{"checkdoc"}},
		{Name: "style", Command: "python", Args: append([]string{"-m", "flake8"}, dirs...)},
		{Name: "initfiles", Command: selfExe, Args: []string{"checkinit"}},
	}
	if mode != ModeSmoke {
		steps = append(steps, Step{
			Name:    "tests",
			Command: "python",
			Args:    []string{"-m", "pytest", "-m", TestTagExpression},
		})
	}

	return &Battery{Steps: steps, Stdout: stdout, Stderr: stderr}
}
