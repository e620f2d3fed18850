package views

import (
	"tracklist/internal/application/designlist"
	"tracklist/internal/domain"
)

// ViewState is embedded by every screen: its size and the one-line status
// message shown under it.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

func (s *ViewState) SetSize(width, height int) {
	s.Width, s.Height = width, height
}

// SetMessage replaces the status line; isErr renders it as an error
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message, s.MessageErr = msg, isErr
}

func (s *ViewState) ClearMessage() {
	s.SetMessage("", false)
}

// Requests from the list to the app
type (
	SwitchToRenameMsg struct{ Ref domain.DesignRef }
	SwitchToDeleteMsg struct{ Ref domain.DesignRef }
	SwitchToHelpMsg   struct{}
	SwitchToListMsg   struct{}

	// OpenEditorMsg asks for Path to be opened in the external editor
	OpenEditorMsg struct{ Path string }

	// RevealMsg asks for Path to be shown in the file manager
	RevealMsg struct{ Path string }

	// DesignChosenMsg reports a design, or the custom row, picked for placement
	DesignChosenMsg struct{ Action designlist.Action }
)

// Results of the manager forms
type (
	RenameSuccessMsg struct {
		Ref     domain.DesignRef
		Message string
	}
	RenameErrMsg struct{ Err error }

	DeleteSuccessMsg struct{ Message string }
	DeleteErrMsg     struct{ Err error }
)
