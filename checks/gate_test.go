package checks

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepNames(b *Battery) []string {
	names := make([]string, 0, len(b.Steps))
	for _, step := range b.Steps {
		names = append(names, step.Name)
	}
	return names
}

func TestNewGateFullProfile(t *testing.T) {
	gate := NewGate("", nil, "/usr/local/bin/ctlr", io.Discard, io.Discard)

	assert.Equal(t,
		[]string{"format", "lint", "typecheck", "docstrings", "style", "initfiles", "tests"},
		stepNames(gate))

	for _, step := range gate.Steps {
		switch step.Name {
		case "format", "lint", "typecheck", "style":
			for _, dir := range DefaultDirs {
				assert.Contains(t, step.Args, dir, "step %s", step.Name)
			}
		case "docstrings", "initfiles":
			assert.Equal(t, "/usr/local/bin/ctlr", step.Command)
			assert.Len(t, step.Args, 1)
		}
	}

	tests := gate.Steps[len(gate.Steps)-1]
	assert.Equal(t, []string{"-m", "pytest", "-m", TestTagExpression}, tests.Args)
}

func TestNewGateSmokeSkipsTests(t *testing.T) {
	gate := NewGate(ModeSmoke, nil, "ctlr", io.Discard, io.Discard)

	assert.Equal(t,
		[]string{"format", "lint", "typecheck", "docstrings", "style", "initfiles"},
		stepNames(gate))
}

func TestNewGateSmokeAndFullShareDirectorySet(t *testing.T) {
	smoke := NewGate(ModeSmoke, nil, "ctlr", io.Discard, io.Discard)
	full := NewGate("full", nil, "ctlr", io.Discard, io.Discard)

	require.Equal(t, smoke.Steps[0].Args, full.Steps[0].Args)
	assert.Equal(t,
		[]string{"-m", "black", "--check", "config", "seminars", "admin_utils", "core_utils", "lab_5_scrapper"},
		smoke.Steps[0].Args)
}

func TestNewGateCustomDirs(t *testing.T) {
	gate := NewGate("", []string{"alpha", "beta"}, "ctlr", io.Discard, io.Discard)

	assert.Equal(t, []string{"-m", "pylint", "alpha", "beta"}, gate.Steps[1].Args)
}
