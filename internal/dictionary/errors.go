package dictionary

import "errors"

// ErrNotLoaded is returned by Holder.Lookup before any dictionary was stored.
var ErrNotLoaded = errors.New("dictionary not loaded")
