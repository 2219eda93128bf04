package entity

// Column is a results table column in the demo host, addressed by dotted path.
type Column struct {
	Path   string `yaml:"path"`
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width" default:"20"`
	Format string `yaml:"format,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Heading returns the title, falling back to the path.
func (col Column) Heading() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Path
}
