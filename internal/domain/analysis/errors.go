package analysis

import "errors"

// ErrTransport indicates the proxy was unreachable or replied with a non-2xx status.
var ErrTransport = errors.New("proxy transport error")

// ErrMalformedResponse indicates the proxy reply body was not in the expected shape.
var ErrMalformedResponse = errors.New("malformed proxy response")
