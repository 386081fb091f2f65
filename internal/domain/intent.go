package domain

// IntentType classifies what the user typed at the shell prompt.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentHelp
	IntentQuit
	IntentNavigate // payload: view name
	IntentList
	IntentSearch // payload: query, may be empty
	IntentShow   // payload: recipe reference
	IntentNew
	IntentEdit // payload: recipe reference
	IntentSet  // payload: "<field> <value>"
	IntentDraft
	IntentSave
	IntentCancel
	IntentDelete // payload: recipe reference
	IntentPing
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	case IntentNavigate:
		return "navigate"
	case IntentList:
		return "list"
	case IntentSearch:
		return "search"
	case IntentShow:
		return "show"
	case IntentNew:
		return "new"
	case IntentEdit:
		return "edit"
	case IntentSet:
		return "set"
	case IntentDraft:
		return "draft"
	case IntentSave:
		return "save"
	case IntentCancel:
		return "cancel"
	case IntentDelete:
		return "delete"
	case IntentPing:
		return "ping"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string
}
