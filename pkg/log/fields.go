package log

const (
	FieldKeyURL    = "url"
	FieldKeyKind   = "kind"
	FieldKeyTag    = "tag"
	FieldKeyMethod = "method"
	FieldKeyStatus = "status"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any
