package cache

import "errors"

// ErrClosed is returned by backend operations after Close. The file
// backend reports it directly; the redis backend surfaces the client's
// own closed-connection error instead.
var ErrClosed = errors.New("cache closed")
