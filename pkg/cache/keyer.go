package cache

import "fmt"

// Keyer derives cache keys.
type Keyer interface {
	// ExtractionKey identifies the records extracted from a document by a model.
	ExtractionKey(model, contentHash string) string
	// LayoutKey identifies a layout of a record set.
	LayoutKey(recordsHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered file of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the options that change a layout.
type LayoutKeyOpts struct {
	Mode  string  `json:"mode"`
	Width float64 `json:"width"`
}

// ArtifactKeyOpts holds the options that change a rendered file.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Theme  string  `json:"theme"`
	Ratio  float64 `json:"ratio,omitempty"`
	Engine string  `json:"engine,omitempty"`
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ExtractionKey returns "extract:<model>:<hash>".
func (DefaultKeyer) ExtractionKey(model, contentHash string) string {
	return fmt.Sprintf("extract:%s:%s", model, contentHash)
}

// LayoutKey hashes the record hash together with the layout options.
func (DefaultKeyer) LayoutKey(recordsHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", recordsHash, opts)
}

// ArtifactKey hashes the layout hash together with the render options.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
