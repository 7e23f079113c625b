package parse

type parseOpts struct {
	whitespace bool
	comments   bool
	permissive bool
}

type ParseOption func(*parseOpts)

// ParseWhitespace controls whether whitespace only character data is kept.
// It is kept by default so that documents round trip.
func ParseWhitespace(v bool) ParseOption {
	return func(o *parseOpts) { o.whitespace = v }
}
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePermissive accepts some malformed input, such as unknown entities
// and unquoted attribute values.
func ParsePermissive(v bool) ParseOption {
	return func(o *parseOpts) { o.permissive = v }
}
