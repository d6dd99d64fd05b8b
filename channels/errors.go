package channels

import "errors"

// ErrInvariant marks an engine bug. It is only ever raised through panic.
var ErrInvariant = errors.New("channel invariant violated")
