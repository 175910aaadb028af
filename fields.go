// fields.go
package main

// isFieldDelim reports whether c separates sub-fields of a compound
// resource value. Whitespace and colons are NOT delimiters here; they are
// handled by the line-level splits in the parser.
func isFieldDelim(c byte) bool {
	return c == '-' || c == '_'
}

// splitFields decomposes a compound resource value into its non-empty
// sub-fields. A run of one or more '-'/'_' characters is one separator, so
// "a-b_c" and "a--__b" both split cleanly; a leading run yields no empty
// leading field. A string without delimiters is a single field; the empty
// string has none.
func splitFields(value string) []string {
	fields := make([]string, 0, 8)
	start := 0
	for start < len(value) {
		for start < len(value) && isFieldDelim(value[start]) {
			start++
		}
		if start >= len(value) {
			break
		}
		end := start
		for end < len(value) && !isFieldDelim(value[end]) {
			end++
		}
		fields = append(fields, value[start:end])
		start = end
	}
	return fields
}
