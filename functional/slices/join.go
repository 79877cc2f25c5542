package slices

import "strings"

// Join formats each element of the provided slice using the given function and concatenates the results, placing
// 'sep' between them.
func Join[S ~[]E, E any](s S, format func(e E) string, sep string) string {
	var sb strings.Builder

	for i, e := range s {
		if i > 0 {
			sb.WriteString(sep)
		}

		sb.WriteString(format(e))
	}

	return sb.String()
}
