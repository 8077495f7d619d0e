package entity

// SolcBuild is one entry of the "builds" array of a compiler release list.
type SolcBuild struct {
	Path        string   `json:"path"`
	Version     string   `json:"version"`
	Build       string   `json:"build"`
	LongVersion string   `json:"longVersion"`
	Keccak256   string   `json:"keccak256"`
	SHA256      string   `json:"sha256"`
	URLs        []string `json:"urls"`
}

// SolcReleaseList is the document served at <binaries>/bin/list.json.
type SolcReleaseList struct {
	Builds        []SolcBuild       `json:"builds"`
	Releases      map[string]string `json:"releases"`
	LatestRelease string            `json:"latestRelease"`
}
