package testhelpers

import (
	"os/exec"
	"path/filepath"
	"testing"

	"branchkit.dev/branchkit/internal/git"
)

// Scene is a working clone with an "origin" remote that carries the
// master, develop and release branches the workflows are built around.
type Scene struct {
	Dir       string
	OriginDir string
	Repo      *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates the scene in a temporary directory removed by t.Cleanup.
// Tests are skipped when no git binary is available.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	tmpDir := t.TempDir()
	originDir := filepath.Join(tmpDir, "origin.git")
	workDir := filepath.Join(tmpDir, "work")

	origin := &GitRepo{Dir: tmpDir}
	if err := origin.runGitCommand("init", "-q", "--bare", "-b", "master", originDir); err != nil {
		t.Fatalf("Failed to create origin: %v", err)
	}

	repo, err := NewGitRepo(workDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: workDir, OriginDir: originDir, Repo: repo}

	steps := []func() error{
		func() error { return repo.CreateChangeAndCommit("initial", "init") },
		func() error { return repo.CreateBranch("develop") },
		func() error { return repo.CreateBranch("release") },
		func() error { return repo.RunGitCommand("remote", "add", "origin", originDir) },
		func() error { return repo.RunGitCommand("push", "-q", "origin", "master", "develop", "release") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("Failed to prepare scene: %v", err)
		}
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// CommandRunner returns a git command runner pinned to the scene's working clone.
func (s *Scene) CommandRunner() *git.CommandRunner {
	runner := git.NewCommandRunner(s.Dir)
	runner.SetEnv(GitEnv()...)
	return runner
}

// Runner returns the git adapter pinned to the scene's working clone.
func (s *Scene) Runner() git.Runner {
	return git.NewRunner(s.CommandRunner())
}

// BasicSceneSetup is a setup function that adds one commit on develop and pushes it.
func BasicSceneSetup(scene *Scene) error {
	if err := scene.Repo.CheckoutBranch("develop"); err != nil {
		return err
	}
	if err := scene.Repo.CreateChangeAndCommit("develop work", "develop"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "develop")
}
