package cache

// Keyer builds cache keys.
type Keyer interface {
	// DictionaryKey returns the key for the word list fetched from source.
	DictionaryKey(source string) string
}

// DefaultKeyer hashes key components so any source string is a safe key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DictionaryKey returns "dict:<sha256(source)>".
func (DefaultKeyer) DictionaryKey(source string) string {
	return hashKey("dict", source)
}

// ScopedKeyer prefixes every key of an inner Keyer, giving deployments that
// share one backend separate namespaces.
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner selects
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DictionaryKey returns the prefixed inner key.
func (k *ScopedKeyer) DictionaryKey(source string) string {
	return k.prefix + k.inner.DictionaryKey(source)
}
