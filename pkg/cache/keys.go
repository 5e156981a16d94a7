package cache

// Keyer derives cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey returns the key for an artifact rendered from input with
	// the given content hash.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change the output bytes.
type ArtifactKeyOpts struct {
	Kind     string `json:"kind"`   // "network" or "tiles"
	Format   string `json:"format"` // "svg", "png", "html"
	Detailed bool   `json:"detailed,omitempty"`
	Invert   bool   `json:"invert,omitempty"`
}

// DefaultKeyer hashes the input hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey generates a key of the form "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}
