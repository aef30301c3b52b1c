package loginview

// Phase is where the view is in the login flow.
type Phase int

const (
	// Editing is the initial phase and the one every keystroke returns to.
	Editing Phase = iota
	// SubmittedError means the last submit matched no pair.
	SubmittedError
	// SubmittedSuccess is terminal: the role has been handed to the caller.
	SubmittedSuccess
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case SubmittedError:
		return "submitted-error"
	case SubmittedSuccess:
		return "submitted-success"
	}
	return "unknown"
}

// Field names one of the two form inputs.
type Field int

const (
	FieldUsername Field = iota
	FieldPassword
)

// State is the view-owned form state.
type State struct {
	Username string
	Password string
	Error    string
	Phase    Phase
}

// Input applies a change to one field. It clears any error and leaves the
// other field untouched.
func (s State) Input(field Field, value string) State {
	switch field {
	case FieldUsername:
		s.Username = value
	case FieldPassword:
		s.Password = value
	default:
		return s
	}
	s.Error = ""
	s.Phase = Editing
	return s
}

func (s State) failed(message string) State {
	s.Error = message
	s.Phase = SubmittedError
	return s
}

func (s State) succeeded() State {
	s.Error = ""
	s.Phase = SubmittedSuccess
	return s
}
