package assets

// StyleLoader loads a stylesheet by name (without .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names with path components.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}
