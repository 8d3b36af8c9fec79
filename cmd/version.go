package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time. Without it the module
// version recorded by go install is used.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		printVersion(cmd.OutOrStdout(), version, info)
	},
}

// printVersion writes the release version followed by the module path,
// Go toolchain and VCS revision when the binary carries them.
func printVersion(w io.Writer, v string, info *debug.BuildInfo) {
	if v == "" && info != nil {
		v = info.Main.Version
	}
	if v == "" {
		v = "(devel)"
	}
	fmt.Fprintln(w, "moneypath", v)
	if info == nil {
		return
	}
	if info.Main.Path != "" {
		fmt.Fprintln(w, "  module:  ", info.Main.Path)
	}
	fmt.Fprintln(w, "  go:      ", info.GoVersion)

	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = " (modified)"
			}
		}
	}
	if rev != "" {
		fmt.Fprintln(w, "  revision:", rev+dirty)
	}
}
