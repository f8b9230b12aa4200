// Package promptlib resolves prompt arguments into prompt text (lazy,
// cached). A value resolves in order: named library entry under
// {dir}/{kind}/{value}.txt, then filesystem path, then literal text.
// List enumerates the library contents for the listing mode.
package promptlib
