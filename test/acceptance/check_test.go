// ABOUTME: Acceptance tests for the check command
// ABOUTME: Runs the binary against JSON, TOML and YAML options files
package acceptance

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pomframework/pomutils/test/helpers"
)

var _ = Describe("check", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Describe("with a minimal pom.json", func() {
		BeforeEach(func() {
			env.WriteOptions(map[string]interface{}{
				"parentDirectory": env.ParentDir,
			})
		})

		It("finds the options file in the working directory", func() {
			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(0), result.Stderr)
			Expect(result.Stdout).To(ContainSubstring("Framework Options"))
			Expect(result.Stdout).To(ContainSubstring(env.ParentDir))
			Expect(result.Stdout).To(ContainSubstring("Options valid"))
		})

		It("applies defaults", func() {
			result := env.Run("check", "--json")
			Expect(result.ExitCode).To(Equal(0), result.Stderr)

			opts := helpers.ParseJSON(result.Stdout)
			Expect(opts["applicationDirectory"]).To(Equal(filepath.Join(env.ParentDir, "application")))
			Expect(opts["pluginDirectory"]).To(Equal(false))
			Expect(opts["verbose"]).To(Equal(true))
			Expect(opts["colors"]).To(Equal(true))
			Expect(opts["pluginSettings"]).To(Equal(map[string]interface{}{
				"path":             false,
				"files":            false,
				"namespaceConfigs": false,
			}))
		})

		It("warns when plugin settings are missing", func() {
			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stderr).To(ContainSubstring("plugin settings directory not found"))
		})

		It("accepts the console logger", func() {
			result := env.Run("check", "--logger", "console")

			Expect(result.ExitCode).To(Equal(0), result.Stderr)
			Expect(result.Stderr).To(ContainSubstring("plugin settings directory not found"))
		})

		It("rejects an unknown logger", func() {
			result := env.Run("check", "--logger", "syslog")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring(`unknown logger "syslog"`))
		})

		It("prints a markdown report", func() {
			result := env.Run("check", "--markdown")

			Expect(result.ExitCode).To(Equal(0), result.Stderr)
			Expect(result.Stdout).To(ContainSubstring("# Framework Options"))
			Expect(result.Stdout).To(ContainSubstring("| parentDirectory |"))
		})
	})

	Describe("with plugin settings", func() {
		BeforeEach(func() {
			env.CreateSettingsFile("pluginSettings/server.js")
			env.CreateSettingsFile("pluginSettings/A/x.js")
			env.WriteOptions(map[string]interface{}{
				"parentDirectory": env.ParentDir,
			})
		})

		It("reports files and namespaces", func() {
			result := env.Run("check", "--json")
			Expect(result.ExitCode).To(Equal(0), result.Stderr)

			opts := helpers.ParseJSON(result.Stdout)
			settings := opts["pluginSettings"].(map[string]interface{})
			Expect(settings["path"]).To(Equal(filepath.Join(env.ParentDir, "pluginSettings")))
			Expect(settings["files"]).To(Equal([]interface{}{"server"}))
			Expect(settings["namespaceConfigs"]).To(Equal(map[string]interface{}{
				"A": []interface{}{"x"},
			}))
		})
	})

	Describe("validation failures", func() {
		It("requires parentDirectory", func() {
			env.WriteOptions(map[string]interface{}{})

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("options.parentDirectory not set."))
			Expect(result.Stderr).To(ContainSubstring("pom.json"))
		})

		It("rejects a missing parentDirectory", func() {
			env.WriteOptions(map[string]interface{}{
				"parentDirectory": "/nonexistent/path",
			})

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("options.parentDirectory doesn't exist."))
		})

		It("rejects a missing pluginDirectory", func() {
			env.WriteOptions(map[string]interface{}{
				"parentDirectory": env.ParentDir,
				"pluginDirectory": filepath.Join(env.ParentDir, "plugins"),
			})

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("options.pluginDirectory doesn't exist or is not a directory."))
		})

		It("fails when no options file exists", func() {
			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("no options file found"))
		})
	})

	Describe("other formats", func() {
		It("reads TOML given with --config and keeps a zero timeout", func() {
			path := env.WriteFile("framework.toml", "parentDirectory = \"framework\"\ntimeout = 0\n")

			result := env.Run("check", "--config", path, "--json")
			Expect(result.ExitCode).To(Equal(0), result.Stderr)

			opts := helpers.ParseJSON(result.Stdout)
			Expect(opts["parentDirectory"]).To(Equal("framework"))
			Expect(opts["timeout"]).To(BeEquivalentTo(0))
		})

		It("reads YAML named by POMUTILS_CONFIG", func() {
			path := env.WriteFile("conf/framework.yaml", "parentDirectory: "+env.ParentDir+"\nverbose: false\n")

			result := env.RunWithEnv(map[string]string{"POMUTILS_CONFIG": path}, "check", "--json")
			Expect(result.ExitCode).To(Equal(0), result.Stderr)

			opts := helpers.ParseJSON(result.Stdout)
			Expect(opts["verbose"]).To(Equal(false))
			Expect(opts["colors"]).To(Equal(true))
		})

		It("rejects unknown extensions", func() {
			path := env.WriteFile("framework.ini", "parentDirectory=framework\n")

			result := env.Run("check", "--config", path)

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("unsupported options file extension"))
		})
	})
})
