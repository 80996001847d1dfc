// ABOUTME: TestEnv provides isolated test environments for acceptance tests
// ABOUTME: Creates temp framework trees and runs the CLI binary against them
package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestEnv represents an isolated test environment
type TestEnv struct {
	TempDir   string // Root temp directory, also the working directory
	ParentDir string // Framework parent directory
	Binary    string // Path to pomutils binary
}

// Result holds the outcome of a CLI run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv creates a new isolated test environment with an empty
// framework parent directory.
func NewTestEnv(binary string) *TestEnv {
	tempDir := GinkgoT().TempDir()

	env := &TestEnv{
		TempDir:   tempDir,
		ParentDir: filepath.Join(tempDir, "framework"),
		Binary:    binary,
	}

	Expect(os.MkdirAll(env.ParentDir, 0755)).To(Succeed())
	return env
}

// Run executes the CLI with the given arguments from TempDir
func (e *TestEnv) Run(args ...string) *Result {
	return e.RunWithEnv(nil, args...)
}

// RunWithEnv executes the CLI with additional environment variables
func (e *TestEnv) RunWithEnv(extraEnv map[string]string, args ...string) *Result {
	cmd := exec.Command(e.Binary, args...)
	cmd.Dir = e.TempDir
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "POMUTILS_CONFIG=")

	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// Mkdir creates a directory under the parent directory and returns its path
func (e *TestEnv) Mkdir(rel string) string {
	path := filepath.Join(e.ParentDir, rel)
	Expect(os.MkdirAll(path, 0755)).To(Succeed())
	return path
}

// CreateSettingsFile writes an empty settings module under the parent directory
func (e *TestEnv) CreateSettingsFile(rel string) string {
	path := filepath.Join(e.ParentDir, rel)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte("module.exports = {};\n"), 0644)).To(Succeed())
	return path
}

// WriteFile writes arbitrary content to a file relative to TempDir
func (e *TestEnv) WriteFile(rel, content string) string {
	path := filepath.Join(e.TempDir, rel)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

// WriteOptions writes options as pom.json in TempDir
func (e *TestEnv) WriteOptions(options map[string]interface{}) string {
	path := filepath.Join(e.TempDir, "pom.json")
	WriteJSON(path, options)
	return path
}

// BuildBinary builds the pomutils binary and returns its path
func BuildBinary() string {
	binPath := filepath.Join(GinkgoT().TempDir(), "pomutils")

	// Find the project root by looking for go.mod
	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	sourcePath := filepath.Join(projectRoot, "cmd", "pomutils")

	cmd := exec.Command("go", "build", "-o", binPath, sourcePath)
	Expect(cmd.Run()).To(Succeed())
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// WriteJSON writes data as JSON to the specified path
func WriteJSON(path string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, jsonData, 0644)).To(Succeed())
}

// ParseJSON decodes CLI output into a map
func ParseJSON(output string) map[string]interface{} {
	var result map[string]interface{}
	Expect(json.Unmarshal([]byte(output), &result)).To(Succeed())
	return result
}
