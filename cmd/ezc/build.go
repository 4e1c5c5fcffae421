package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ezc/internal/diagfmt"
	"ezc/internal/driver"
	"ezc/internal/project"
)

const noManifestMessage = "no " + project.ManifestName + " found; pass a file or directory to build"

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.ez|dir]",
	Short: "Lower ez sources to three-address code",
	Long: `Build lowers every .ez file of a file, a directory or the project described
by ` + project.ManifestName + `. With an output directory each clean unit is
written to <out>/<name>.tac; otherwise the code is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output directory for .tac files")
	buildCmd.Flags().Int("jobs", 0, "parallel units (0 = GOMAXPROCS)")
	buildCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	buildCmd.Flags().Bool("no-cache", false, "bypass the on-disk unit cache")
}

// buildPlan is what a build invocation resolved to.
type buildPlan struct {
	baseDir string
	files   []string
	opts    driver.BuildOptions
	cache   bool
}

func runBuild(cmd *cobra.Command, args []string) error {
	plan, err := resolveBuildPlan(cmd, args)
	if err != nil {
		return err
	}
	if len(plan.files) == 0 {
		return fmt.Errorf("no %s files in %s", driver.SourceExt, plan.baseDir)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()

	if plan.cache {
		cache, err := driver.OpenDiskCache("ezc")
		if err != nil {
			fmt.Fprintf(stderr, "warning: cache disabled: %v\n", err)
		} else {
			plan.opts.Cache = cache
		}
	}

	start := time.Now()
	var res *driver.BuildResult
	if shouldUseTUI(mode, len(plan.files)) {
		res, err = runBuildWithUI(cmd.Context(), "ezc build", plan.baseDir, plan.files, plan.opts)
	} else {
		res, err = driver.BuildFiles(cmd.Context(), plan.baseDir, plan.files, plan.opts)
	}
	wall := time.Since(start)
	if res == nil {
		return err
	}

	if perr := printBuildDiagnostics(cmd, res); perr != nil {
		return perr
	}
	if err != nil {
		return err
	}
	if plan.opts.OutDir == "" {
		if err := printUnits(cmd.OutOrStdout(), res.Units); err != nil {
			return err
		}
	}
	if timings {
		if err := printTimings(stderr, res.Units, wall); err != nil {
			return err
		}
	}
	if res.Failed() {
		return errFailed
	}
	return nil
}

func resolveBuildPlan(cmd *cobra.Command, args []string) (*buildPlan, error) {
	flags := cmd.Flags()
	outDir, err := flags.GetString("out")
	if err != nil {
		return nil, err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	plan := &buildPlan{cache: !noCache}
	if len(args) == 0 {
		manifest, ok, err := project.Load(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(noManifestMessage)
		}
		for _, key := range manifest.Unknown {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: unknown key %q\n", manifest.Path, key)
		}
		build := manifest.Config.Build
		plan.baseDir = manifest.SourcesDir()
		plan.cache = plan.cache && build.Cache
		if outDir == "" {
			outDir = manifest.OutDir()
		}
		if !flags.Changed("jobs") {
			jobs = build.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			maxDiagnostics = build.MaxDiagnostics
		}
		plan.files, err = driver.ListSources(plan.baseDir)
		if err != nil {
			return nil, err
		}
	} else {
		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			plan.baseDir = target
			plan.files, err = driver.ListSources(target)
			if err != nil {
				return nil, err
			}
		} else {
			plan.baseDir = filepath.Dir(target)
			plan.files = []string{target}
		}
	}

	plan.opts = driver.BuildOptions{
		CompileOptions: driver.CompileOptions{MaxDiagnostics: maxDiagnostics},
		Jobs:           jobs,
		OutDir:         outDir,
	}
	return plan, nil
}

func printBuildDiagnostics(cmd *cobra.Command, res *driver.BuildResult) error {
	stderr := cmd.ErrOrStderr()
	color, err := useColor(cmd, stderr)
	if err != nil {
		return err
	}
	opts := diagfmt.PrettyOpts{Color: color, ShowNotes: true}
	for _, unit := range res.Units {
		if unit == nil || unit.Bag == nil || unit.Bag.Len() == 0 {
			continue
		}
		if err := diagfmt.Pretty(stderr, unit.Bag, res.FileSet, opts); err != nil {
			return err
		}
	}
	return nil
}

// printUnits writes the code of clean units, headed by their path when
// there is more than one.
func printUnits(out io.Writer, units []*driver.CompileResult) error {
	var sb strings.Builder
	for _, unit := range units {
		if unit == nil || unit.Failed() {
			continue
		}
		if len(units) > 1 {
			fmt.Fprintf(&sb, "%s:\n", unit.Path)
		}
		for _, line := range unit.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(out, sb.String())
	return err
}
