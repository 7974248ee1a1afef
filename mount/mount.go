// Package mount binds buckets into the local filesystem with gcsfuse and
// releases them again with fusermount or umount.
package mount

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/util"
	zErrors "github.com/gjutils/gjutil/zErrors"
)

const (
	DefaultHelper = "gcsfuse"
	// ImplicitDirsFlag makes gcsfuse synthesise directories from key prefixes.
	ImplicitDirsFlag = "--implicit-dirs"
)

// DefaultUnmountTools are tried in order; the directory is appended to the
// arguments of each.
var DefaultUnmountTools = []util.Command{
	{Program: "fusermount", Args: []string{"-u"}},
	{Program: "umount"},
}

// MountResult is the captured outcome of one mount helper run.
type MountResult struct {
	Bucket       string
	LocalPath    string
	ImplicitDirs bool
	util.Result
}

// ErrText is stderr with newlines removed.
func (r *MountResult) ErrText() string {
	return strings.ReplaceAll(r.Stderr, "\n", "")
}

// Print writes the helper's stderr, or its stdout when stderr is empty.
func (r *MountResult) Print(w io.Writer) {
	errText := r.ErrText()
	if errText == "" {
		fmt.Fprintln(w, r.Stdout)
		return
	}
	fmt.Fprintln(w, errText)
	if strings.HasSuffix(errText, "EOF") {
		fmt.Fprintln(w, "Bucket already mounted in place?")
	}
}

type Mounter struct {
	runner util.Runner
	helper string
}

func NewMounter(runner util.Runner, helper string) *Mounter {
	if helper == "" {
		helper = DefaultHelper
	}
	return &Mounter{runner: runner, helper: helper}
}

func (m *Mounter) Command(bucket, localPath string, implicitDirs bool) util.Command {
	args := make([]string, 0, 3)
	if implicitDirs {
		args = append(args, ImplicitDirsFlag)
	}
	args = append(args, bucket, localPath)
	return util.Command{Program: m.helper, Args: args}
}

// Mount runs the helper and classifies its output. The returned result is
// never nil, so callers can always show what the helper printed.
func (m *Mounter) Mount(ctx context.Context, bucket, localPath string, implicitDirs bool) (*MountResult, error) {
	cmd := m.Command(bucket, localPath, implicitDirs)
	zlogger.Logger.Info("Mounting bucket: ", cmd.String())

	res, runErr := m.runner.Run(ctx, cmd)
	if res == nil {
		res = &util.Result{ExitCode: -1}
	}

	out := &MountResult{
		Bucket:       bucket,
		LocalPath:    localPath,
		ImplicitDirs: implicitDirs,
		Result:       *res,
	}

	errText := out.ErrText()
	switch {
	case strings.HasSuffix(errText, "EOF"):
		return out, zErrors.NewAlreadyMountedError(localPath, errText)
	case runErr != nil && errText != "":
		return out, fmt.Errorf("%w: %w", zErrors.NewMountFailedError(bucket, errText), runErr)
	case errText != "":
		return out, zErrors.NewMountFailedError(bucket, errText)
	case runErr != nil:
		return out, fmt.Errorf("%w: %w", zErrors.NewMountFailedError(bucket, runErr.Error()), runErr)
	}

	zlogger.Logger.Info("Mounted ", bucket, " at ", localPath)
	return out, nil
}

// UnmountAttempt records one unmount tool invocation.
type UnmountAttempt struct {
	Command util.Command
	Err     error
}

type UnmountResult struct {
	Directory string
	// Tool is the program that succeeded, empty when none did.
	Tool       string
	Attempts   []UnmountAttempt
	DirRemoved bool
}

type Unmounter struct {
	runner util.Runner
	fs     util.FileSystem
	tools  []util.Command
}

func NewUnmounter(runner util.Runner, fs util.FileSystem) *Unmounter {
	return &Unmounter{runner: runner, fs: fs, tools: DefaultUnmountTools}
}

// WithTools replaces the unmount programs tried by Unmount.
func (u *Unmounter) WithTools(tools ...util.Command) *Unmounter {
	if len(tools) > 0 {
		u.tools = tools
	}
	return u
}

// Unmount tries each tool until one succeeds. With removeDir set the
// directory is removed afterwards whether or not the unmount worked; a
// removal failure is returned joined with any unmount failure.
func (u *Unmounter) Unmount(ctx context.Context, directory string, removeDir bool) (*UnmountResult, error) {
	out := &UnmountResult{Directory: directory}

	for _, tool := range u.tools {
		args := append(append([]string{}, tool.Args...), directory)
		cmd := util.Command{Program: tool.Program, Args: args}

		_, err := u.runner.Run(ctx, cmd)
		out.Attempts = append(out.Attempts, UnmountAttempt{Command: cmd, Err: err})
		if err == nil {
			out.Tool = tool.Program
			zlogger.Logger.Info("Unmounted ", directory, " using ", tool.Program)
			break
		}
		zlogger.Logger.Error("Unmount with ", tool.Program, " failed: ", err)
	}

	var unmountErr error
	if out.Tool == "" {
		unmountErr = zErrors.NewUnmountFailedError(directory)
	}

	if removeDir {
		if err := u.fs.Remove(directory); err != nil {
			return out, errors.Join(unmountErr, fmt.Errorf("removing %s: %w", directory, err))
		}
		out.DirRemoved = true
	}

	return out, unmountErr
}
