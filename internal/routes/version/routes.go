package version

import (
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type VersionResponse struct {
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

var Version = loadVersion()

// loadVersion prefers the VCS revision stamped into the binary and falls back to git.
func loadVersion() VersionResponse {
	version := VersionResponse{Commit: "unknown"}

	if info, ok := debug.ReadBuildInfo(); ok {
		version.GoVersion = info.GoVersion
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				version.Commit = setting.Value
				return version
			}
		}
	}

	if output, err := exec.Command("git", "rev-parse", "HEAD").Output(); err == nil {
		version.Commit = strings.TrimSpace(string(output))
	}

	return version
}

func SetupRoutes(app *fiber.App) {
	versionGroup := app.Group("/version")
	versionGroup.Get("/", versionHandler)
}

func versionHandler(c *fiber.Ctx) error {
	return c.JSON(Version)
}
