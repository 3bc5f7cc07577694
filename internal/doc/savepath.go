package doc

import "strings"

const annotatedSuffix = "_annotated.pdf"

// AnnotatedPath derives the output path for saving an annotated copy of
// the document at path. A path already ending in "_annotated.pdf" is
// reused as-is; a ".pdf" path has the extension replaced by
// "_annotated.pdf"; anything else gains the suffix verbatim.
func AnnotatedPath(path string) string {
	if strings.HasSuffix(path, annotatedSuffix) {
		return path
	}
	if strings.HasSuffix(path, ".pdf") {
		return strings.TrimSuffix(path, ".pdf") + annotatedSuffix
	}
	return path + annotatedSuffix
}
