package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ppd/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name          string
		stdin, stdout bool
		ci            string
		want          detector.OutputMode
	}{
		{name: "interactive terminal", stdin: true, stdout: true, want: detector.ModeTUI},
		{name: "CI=true", stdin: true, stdout: true, ci: "true", want: detector.ModeLinear},
		{name: "CI=1", stdin: true, stdout: true, ci: "1", want: detector.ModeLinear},
		{name: "CI=false", stdin: true, stdout: true, ci: "false", want: detector.ModeTUI},
		{name: "piped stdout", stdin: true, stdout: false, want: detector.ModeLinear},
		{name: "redirected stdin", stdin: false, stdout: true, want: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.stdin, tt.stdout, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag string
		auto detector.OutputMode
		want detector.OutputMode
	}{
		{flag: "tui", auto: detector.ModeLinear, want: detector.ModeTUI},
		{flag: "TUI", auto: detector.ModeLinear, want: detector.ModeTUI},
		{flag: "linear", auto: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "ci", auto: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "headless", auto: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "auto", auto: detector.ModeTUI, want: detector.ModeTUI},
		{flag: "", auto: detector.ModeLinear, want: detector.ModeLinear},
		{flag: "bogus", auto: detector.ModeTUI, want: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
	assert.Equal(t, "auto", detector.ModeAuto.String())
}
