// ABOUTME: Acceptance tests for the discover and dir commands
// ABOUTME: Verifies settings listings, JSON shape and directory exit codes
package acceptance

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pomframework/pomutils/test/helpers"
)

var _ = Describe("discover", func() {
	var (
		env  *helpers.TestEnv
		root string
	)

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
		root = env.Mkdir("pluginSettings")
		env.CreateSettingsFile("pluginSettings/server.js")
		env.CreateSettingsFile("pluginSettings/db/mongo.js")
		env.CreateSettingsFile("pluginSettings/db/types.ts")
		env.CreateSettingsFile("pluginSettings/db/drivers/native.js")
	})

	It("lists files and namespaces", func() {
		result := env.Run("discover", root)

		Expect(result.ExitCode).To(Equal(0), result.Stderr)
		Expect(result.Stdout).To(ContainSubstring("Files (1)"))
		Expect(result.Stdout).To(ContainSubstring("server"))
		Expect(result.Stdout).To(ContainSubstring("Namespaces (1)"))
		Expect(result.Stdout).To(ContainSubstring("db/"))
		Expect(result.Stdout).To(ContainSubstring("drivers"))
		Expect(result.Stdout).NotTo(ContainSubstring("native"))
		Expect(result.Stdout).To(ContainSubstring("1 files, 1 namespaces"))
	})

	It("warns on stderr when the directory is missing", func() {
		missing := filepath.Join(env.TempDir, "missing")
		result := env.Run("discover", missing)

		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stdout).To(ContainSubstring("not found"))
		Expect(result.Stderr).To(ContainSubstring(missing + " doesn't exist or is not a directory"))
	})

	It("prints the discovery result as JSON", func() {
		result := env.Run("discover", root, "--json")

		Expect(result.ExitCode).To(Equal(0), result.Stderr)
		Expect(result.Stdout).To(MatchJSON(`{
			"path": "` + root + `",
			"files": ["server"],
			"namespaceConfigs": {"db": ["drivers", "mongo", "types.ts"]}
		}`))
	})

	It("strips custom extensions", func() {
		result := env.Run("discover", root, "--json", "--ext", ".ts,.js")

		Expect(result.ExitCode).To(Equal(0), result.Stderr)
		settings := helpers.ParseJSON(result.Stdout)
		Expect(settings["namespaceConfigs"]).To(HaveKeyWithValue("db", []interface{}{"drivers", "mongo", "types"}))
	})

	It("reports a missing directory without failing", func() {
		result := env.Run("discover", filepath.Join(env.TempDir, "missing"), "--json")

		Expect(result.ExitCode).To(Equal(0), result.Stderr)
		Expect(result.Stdout).To(MatchJSON(`{"path": false, "files": false, "namespaceConfigs": false}`))
	})

	It("logs scan details with --verbose", func() {
		result := env.Run("discover", root, "--verbose")

		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stderr).To(ContainSubstring("scanning plugin settings"))
	})

	It("requires a directory argument", func() {
		result := env.Run("discover")

		Expect(result.ExitCode).To(Equal(1))
	})
})

var _ = Describe("dir", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	It("prints an existing directory unchanged", func() {
		result := env.Run("dir", "framework")

		Expect(result.ExitCode).To(Equal(0), result.Stderr)
		Expect(result.Stdout).To(Equal("framework\n"))
	})

	It("fails for a regular file", func() {
		file := env.CreateSettingsFile("app.js")

		result := env.Run("dir", file)

		Expect(result.ExitCode).To(Equal(1))
		Expect(result.Stderr).To(ContainSubstring("is not a directory"))
	})

	It("fails for a missing path", func() {
		result := env.Run("dir", "/nonexistent/path")

		Expect(result.ExitCode).To(Equal(1))
		Expect(result.Stdout).To(BeEmpty())
	})
})
