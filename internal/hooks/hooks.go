// Package hooks runs user scripts after wezconf writes a file.
//
// Scripts live in {hooks_dir}/<point>/ and run in name order. Only
// executable regular files are run. Each script receives the hook point,
// a timestamp and the point-specific variables in its environment.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/cristianoliveira/wezterm-configurator/internal/logging"
)

// Hook points.
const (
	PostGenerate = "post-generate"
	PostSave     = "post-save"
)

// Failure modes.
const (
	FailureAbort  = "abort"
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

// Environment variables passed to every script.
const (
	EnvHookPoint   = "WEZCONF_HOOK_POINT"
	EnvTimestamp   = "WEZCONF_HOOK_TIMESTAMP"
	EnvBinary      = "WEZCONF_BINARY"
	EnvProfilePath = "WEZCONF_PROFILE_PATH"
	EnvOutputPath  = "WEZCONF_OUTPUT_PATH"
)

const defaultTimeout = 30 * time.Second

// Runner executes the scripts of a hook point.
type Runner struct {
	Dir         string
	FailureMode string
	Timeout     time.Duration
	// Out receives script output and progress lines.
	Out io.Writer
}

// NewRunner builds a Runner from the loaded configuration.
func NewRunner(out io.Writer) *Runner {
	if out == nil {
		out = os.Stderr
	}
	return &Runner{
		Dir:         config.Get("hooks_dir", ""),
		FailureMode: config.Get("hooks_failure_mode", FailureWarn),
		Timeout:     time.Duration(config.GetInt("hooks_timeout", int(defaultTimeout/time.Second))) * time.Second,
		Out:         out,
	}
}

// Run executes the scripts for point with the extra environment vars.
// A failing script stops the run only in abort mode.
func (r *Runner) Run(ctx context.Context, point string, vars map[string]string) error {
	scripts, err := r.scripts(point)
	if err != nil || len(scripts) == 0 {
		return err
	}

	env := os.Environ()
	env = append(env, EnvHookPoint+"="+point, EnvTimestamp+"="+time.Now().Format(time.RFC3339))
	if exe, err := os.Executable(); err == nil {
		env = append(env, EnvBinary+"="+exe)
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}

	logging.Debug("running hooks", "point", point, "count", len(scripts))
	for _, script := range scripts {
		if err := r.runScript(ctx, script, env); err != nil {
			switch r.FailureMode {
			case FailureAbort:
				return err
			case FailureIgnore:
				logging.Debug("hook failed", "script", script, "error", err)
			default:
				fmt.Fprintf(r.out(), "warning: %v\n", err)
				logging.Warn("hook failed", "script", script, "error", err)
			}
		}
	}
	return nil
}

// scripts lists the executable files of point sorted by name. A missing
// directory means no hooks.
func (r *Runner) scripts(point string) ([]string, error) {
	if r.Dir == "" {
		return nil, nil
	}
	dir := filepath.Join(r.Dir, point)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read hooks %s: %w", dir, err)
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() || info.Mode()&0111 == 0 {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(scripts)
	return scripts, nil
}

func (r *Runner) runScript(ctx context.Context, script string, env []string) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = env
	cmd.Stdout = r.out()
	cmd.Stderr = r.out()
	cmd.WaitDelay = time.Second
	err := cmd.Run()
	duration := time.Since(start)

	name := filepath.Base(script)
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("hook %s timed out after %s", name, timeout)
	}
	if err != nil {
		return fmt.Errorf("hook %s failed: %w", name, err)
	}
	logging.Debug("hook completed", "script", name, "duration", duration)
	return nil
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}
