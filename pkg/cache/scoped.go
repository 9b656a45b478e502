package cache

// ScopedKeyer wraps a Keyer with a prefix, giving server deployments
// separate cache namespaces per environment or tenant on one shared
// Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key
// generated by inner. A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ConfigKey generates a prefixed config snapshot key.
func (k *ScopedKeyer) ConfigKey(configHash string) string {
	return k.prefix + k.inner.ConfigKey(configHash)
}

// LayoutKey generates a prefixed layout tree key.
func (k *ScopedKeyer) LayoutKey(configHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(configHash, opts)
}

// ResultKey generates a prefixed layout result key.
func (k *ScopedKeyer) ResultKey(layoutID string) string {
	return k.prefix + k.inner.ResultKey(layoutID)
}
