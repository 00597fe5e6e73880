package service

import "github.com/microcosm-cc/bluemonday"

// User supplied text is sanitized before it reaches storage. Titles and
// comments are stripped to plain text; post bodies keep safe formatting tags.
var (
	strictPolicy  = bluemonday.StrictPolicy()
	contentPolicy = bluemonday.UGCPolicy()
)

func sanitizePlain(s string) string {
	return strictPolicy.Sanitize(s)
}

func sanitizeContent(s string) string {
	return contentPolicy.Sanitize(s)
}
