package message

// ErrorMsg contains an error raised while handling an update
type ErrorMsg struct {
	Err error
}

// SelectedMsg reports the record under the cursor of the results table
type SelectedMsg struct {
	Row int
}
