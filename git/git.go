package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DiffContextLines is the number of context lines requested around each
// hunk, so the reviewer sees the surroundings of every change.
const DiffContextLines = 30

// defaultBranchRefs are the upstream refs tried, in order, when no
// explicit comparison revision is given. A failed lookup is superseded
// by the next candidate.
var defaultBranchRefs = []string{"origin/main", "origin/master"}

var (
	// ErrInvalidRevision means the explicit comparison revision does not
	// resolve in the current repository.
	ErrInvalidRevision = errors.New("invalid git revision")
	// ErrNoMergeBase means no candidate upstream branch yielded a common
	// ancestor with HEAD.
	ErrNoMergeBase = errors.New("failed to find merge base with origin/main or origin/master")
	// ErrEmptyChangeSet means the diff between the base and HEAD is empty.
	ErrEmptyChangeSet = errors.New("no changes found")
)

// Runner defines an interface for running git commands
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// Ensure DefaultRunner implements Runner interface
var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements the Runner interface using exec.Command
type DefaultRunner struct {
	RepoPath string
}

// NewDefaultRunner creates a new instance of DefaultRunner
func NewDefaultRunner(repoPath string) *DefaultRunner {
	return &DefaultRunner{
		RepoPath: repoPath,
	}
}

// Run executes a command and returns its raw standard output. The output
// is not trimmed; diff text must pass through unmodified.
func (r *DefaultRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("error running command: %s\nstderr: %s", err, stderr.String())
	}

	return stdout.String(), nil
}

// Client provides the git operations behind the review pipeline:
// resolving the comparison base and extracting the diff to review.
type Client struct {
	runner Runner
}

// NewClient creates a new Git client
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
	}
}

// ResolveBase determines the revision the current HEAD is diffed
// against. When against is non-empty it is verified and used as-is, with
// no merge-base computation. Otherwise the merge base of HEAD and the
// first resolvable default-branch ref is used.
func (c *Client) ResolveBase(against string) (string, error) {
	if against != "" {
		if _, err := c.runner.Run("git", "rev-parse", "--verify", against); err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidRevision, against)
		}
		return against, nil
	}

	for _, ref := range defaultBranchRefs {
		output, err := c.runner.Run("git", "merge-base", ref, "HEAD")
		if err != nil {
			// Only a failed lookup is superseded by the next candidate.
			continue
		}
		base := strings.TrimSpace(output)
		if base == "" {
			// Zero exit with no output: there is no ancestor to fall
			// back to.
			return "", ErrNoMergeBase
		}
		return base, nil
	}

	return "", ErrNoMergeBase
}

// Diff returns the unified diff between base and HEAD with
// DiffContextLines lines of context. Tracked files may contain arbitrary
// bytes, so invalid UTF-8 is replaced rather than rejected.
func (c *Client) Diff(base string) (string, error) {
	if base == "" {
		return "", errors.New("base revision cannot be empty")
	}

	output, err := c.runner.Run("git", "diff", fmt.Sprintf("-U%d", DiffContextLines), base, "HEAD")
	if err != nil {
		return "", fmt.Errorf("error running git diff: %w", err)
	}

	if output == "" {
		return "", ErrEmptyChangeSet
	}

	return strings.ToValidUTF8(output, "�"), nil
}

// Changes resolves the comparison base and extracts the diff in one
// step. This is the entry point used by both the review and show-diff
// commands.
func (c *Client) Changes(against string) (string, error) {
	base, err := c.ResolveBase(against)
	if err != nil {
		return "", err
	}
	return c.Diff(base)
}
