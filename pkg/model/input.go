package model

// ImageMeta describes the featured image attached to an article. The
// values come from the article metadata provider; this core never opens
// image files itself.
type ImageMeta struct {
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Format  string `json:"format" yaml:"format"`
	License string `json:"license" yaml:"license"`
	Credit  string `json:"credit" yaml:"credit"`
}

// DocumentMeta carries the structural facts document-level rules need.
type DocumentMeta struct {
	Title         string     `json:"title" yaml:"title"`
	FeaturedImage *ImageMeta `json:"featured_image" yaml:"featured_image"`
}

// AnalysisInput is the read-only content one analysis run operates on.
// It is constructed once by the caller and never mutated by the engine,
// the adapter, or any rule.
type AnalysisInput struct {
	Text string        `json:"text"`
	HTML string        `json:"html,omitempty"`
	Meta *DocumentMeta `json:"meta,omitempty"`
}

// Empty reports whether the input carries nothing any rule could act on.
func (in *AnalysisInput) Empty() bool {
	return in == nil || (in.Text == "" && in.HTML == "" && in.Meta == nil)
}
