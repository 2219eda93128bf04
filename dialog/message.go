package dialog

type DialogMsg interface {
	isDialogMsg()
}

func (SizeMsg) isDialogMsg()     {}
func (ChosenMsg) isDialogMsg()   {}
func (CanceledMsg) isDialogMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// ChosenMsg is sent when the user confirms an option
type ChosenMsg struct {
	Index int
}

// CanceledMsg is sent when the user dismisses the dialog
type CanceledMsg struct{}
