package entity

// Record is a host supplied structured value, typically a map[string]any
// decoded from json or yaml, or a struct.
// Records are only ever read.
type Record any

// Records converts a slice of maps into records.
func Records[T any](items []T) []Record {

	records := make([]Record, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}
