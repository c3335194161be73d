package staticcmd

// BuildSiteCommand triggers a static site build over the stored posts.
type BuildSiteCommand struct {
	// Permalinks restricts the build to the listed posts when non-empty.
	Permalinks []string `json:"permalinks,omitempty"`
	// DryRun renders without persisting artifacts.
	DryRun bool `json:"dry_run,omitempty"`
	// Clean removes the output directory before building.
	Clean bool `json:"clean,omitempty"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return "blog.static.build_site" }

// Validate implements command.Message. Every field combination is valid; an
// empty command builds the full site.
func (BuildSiteCommand) Validate() error { return nil }
