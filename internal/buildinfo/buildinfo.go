package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Info describes the running binary.
type Info struct {
	Version    string `json:"version" yaml:"version"`
	Tags       string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Revision   string `json:"revision,omitempty" yaml:"revision,omitempty"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	GitVersion string `json:"git_version,omitempty" yaml:"git_version,omitempty"`
}

var readBuildInfo = debug.ReadBuildInfo

// Read collects what the toolchain recorded at compile time. Unset versions
// read as "dev".
func Read() Info {
	info := Info{Version: "dev", GoVersion: runtime.Version()}
	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "-tags":
			info.Tags = setting.Value
		case "vcs.revision":
			info.Revision = setting.Value
		}
	}
	return info
}

func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Tags != "" {
		fmt.Fprintf(&b, " (tags: %s)", i.Tags)
	}
	if len(i.Revision) >= 7 {
		fmt.Fprintf(&b, " rev %s", i.Revision[:7])
	}
	fmt.Fprintf(&b, " %s", i.GoVersion)
	if i.GitVersion != "" {
		fmt.Fprintf(&b, ", git %s", i.GitVersion)
	}
	return b.String()
}
