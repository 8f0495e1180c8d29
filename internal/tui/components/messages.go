package components

import "github.com/Veraticus/transfers/internal/model"

// TransactionSelectedMsg is sent when a row is opened from the list.
type TransactionSelectedMsg struct {
	Transaction model.Transaction
	Index       int
}

// BackToListMsg requests to go back to the transaction list.
type BackToListMsg struct{}

// CopyRequestMsg asks for ID to be written to the clipboard.
type CopyRequestMsg struct {
	ID string
}

// OpenSortPickerMsg asks for the sort picker to be shown.
type OpenSortPickerMsg struct{}

// SortSelectedMsg is sent when a sort mode is chosen in the picker.
type SortSelectedMsg struct {
	Mode model.SortMode
}

// SortPickerClosedMsg is sent when the picker is dismissed without a choice.
type SortPickerClosedMsg struct{}

// RefreshRequestMsg asks for the transfer list to be fetched again.
type RefreshRequestMsg struct{}
