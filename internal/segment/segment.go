package segment

import "strings"

// Delimiter separates the sub-questions of a template (and the sub-answers of
// a response) packed into a single free-text field on the wire.
const Delimiter = "\n\n"

// Split unpacks a delimiter-joined field into its ordered segments. Segments
// that are blank after trimming are dropped.
func Split(text string) []string {
	parts := strings.Split(text, Delimiter)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Join packs segments back into the single wire field. Join is the inverse of
// Split for non-blank segments that do not contain the delimiter themselves.
func Join(segments []string) string {
	return strings.Join(segments, Delimiter)
}
