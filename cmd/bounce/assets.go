package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/lifecycle"
	"github.com/vovakirdan/bounce/internal/platform/tui"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the asset files and whether they exist",
	Long: `Lists the files loaded at startup, in load order. Paths are relative
to the working directory. Audio files are skipped when audio is disabled.`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	fmt.Print(assetTable(tui.DefaultTheme(), fileExists))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// assetTable renders the manifest with the presence of every file.
func assetTable(theme tui.Theme, exists func(string) bool) string {
	nameW, pathW := len("Name"), len("Path")
	for _, a := range lifecycle.Manifest {
		nameW = max(nameW, len(a.Name))
		pathW = max(pathW, len(a.Path))
	}

	var sb strings.Builder
	sb.WriteString(theme.Header.Render(fmt.Sprintf("  %-*s  %-*s  %-5s  %s", nameW, "Name", pathW, "Path", "Kind", "Status")))
	sb.WriteString("\n")

	missing := 0
	for _, a := range lifecycle.Manifest {
		status := theme.Found.Render("ok")
		if !exists(a.Path) {
			status = theme.Missing.Render("missing")
			missing++
		}
		kind := a.Kind
		if a.Audio {
			kind += "*"
		}
		sb.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			theme.Name.Render(fmt.Sprintf("%-*s", nameW, a.Name)),
			theme.Path.Render(fmt.Sprintf("%-*s", pathW, a.Path)),
			theme.Muted.Render(fmt.Sprintf("%-5s", kind)),
			status))
	}

	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("* skipped with --no-audio"))
	sb.WriteString("\n")
	if missing > 0 {
		sb.WriteString(theme.Missing.Render(fmt.Sprintf("%d of %d files missing", missing, len(lifecycle.Manifest))))
		sb.WriteString("\n")
	}
	return sb.String()
}
