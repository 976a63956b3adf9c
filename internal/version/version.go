// Package version carries build information injected with -ldflags:
//
//	go build -ldflags "-X github.com/gogetwell/website/internal/version.Version=1.4.0"
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the build information as reported by /health and `website version`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Get() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
}

func (i Info) String() string {
	return i.Version + " (" + i.GitCommit + ", built " + i.BuildTime + ")"
}
