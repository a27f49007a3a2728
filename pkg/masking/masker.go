package masking

// Masker is the interface for structural maskers that need context beyond
// regex matching, such as classifying an env-file assignment by its key
// before deciding whether the value is sensitive.
type Masker interface {
	// Name identifies the masker; groups reference it by this name.
	Name() string

	// AppliesTo is a fast pre-check (string scan, not parsing) on whether
	// Mask should run at all.
	AppliesTo(text string) bool

	// Mask returns the masked text. Must be defensive: on anything it
	// cannot parse it returns the input unchanged.
	Mask(text string) string
}
