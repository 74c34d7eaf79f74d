package table

// FormatHeader builds the header row matching an assembled table: the
// entries at dropped indices are removed and targetLabel is inserted at
// index 1, above the product-value column. names is not modified.
func FormatHeader(names []string, dropped []int, targetLabel string) []string {
	skip := make(map[int]bool, len(dropped))
	for _, i := range dropped {
		skip[i] = true
	}
	header := make([]string, 0, len(names)+1)
	for i, n := range names {
		if !skip[i] {
			header = append(header, n)
		}
	}
	at := 1
	if len(header) < at {
		at = len(header)
	}
	header = append(header, "")
	copy(header[at+1:], header[at:])
	header[at] = targetLabel
	return header
}
