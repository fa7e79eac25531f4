package httpcore

// Header name constants for type-safe field operations
const (
	HeaderContentType      = "Content-Type"
	HeaderContentLength    = "Content-Length"
	HeaderTransferEncoding = "Transfer-Encoding"
	HeaderConnection       = "Connection"
	HeaderHost             = "Host"
	HeaderDate             = "Date"
	HeaderUserAgent        = "User-Agent"
	HeaderAccept           = "Accept"
	HeaderAcceptEncoding   = "Accept-Encoding"
	HeaderCacheControl     = "Cache-Control"
	HeaderETag             = "ETag"
	HeaderLastModified     = "Last-Modified"
	HeaderIfModifiedSince  = "If-Modified-Since"
	HeaderLocation         = "Location"
	HeaderServer           = "Server"
)
