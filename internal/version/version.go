package version

import (
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// Build metadata of the ezc binary, overridable via -ldflags -X.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = "" // ISO-8601
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the serializable build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Banner renders "ezc <version>" with the major, minor and patch numbers
// colored when colored is set, followed by commit and date when known.
func Banner(colored bool) string {
	var sb strings.Builder
	sb.WriteString("ezc ")
	sb.WriteString(colorize(Version, colored))
	if GitCommit != "" {
		sb.WriteString(" (" + GitCommit)
		if BuildDate != "" {
			sb.WriteString(", " + BuildDate)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

func colorize(v string, colored bool) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if !colored || len(parts) != 3 {
		return v
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	out := paint(majorColor, parts[0]) + "." + paint(minorColor, parts[1]) + "." + paint(patchColor, parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
