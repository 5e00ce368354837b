package domain

// ActionRequest represents something the wizard asks the host to render or collect.
type ActionRequest struct {
	Type    string // e.g., RENDER_CONTENT, REQUEST_INPUT
	Payload any    // The data needed to perform the action
}

// Standard Action Types
const (
	// ActionRenderContent requests the host to display content to the user.
	// Payload: Message
	ActionRenderContent = "RENDER_CONTENT"

	// ActionRequestInput requests the host to collect input from the user.
	// Payload: InputRequest
	ActionRequestInput = "REQUEST_INPUT"

	// ActionSystemMessage represents a non-blocking notice (warning, info).
	// Payload: Notice
	ActionSystemMessage = "SYSTEM_MESSAGE"
)

// Message is a localisable piece of text: a string table key plus format arguments.
type Message struct {
	Key  string `json:"key"`
	Args []any  `json:"args,omitempty"`
}

// Msg builds a Message.
func Msg(key string, args ...any) Message {
	return Message{Key: key, Args: args}
}

// Level classifies a Notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Notice is a message that never blocks the flow.
type Notice struct {
	Level   Level   `json:"level"`
	Message Message `json:"message"`
}

// InputType defines the kind of input requested.
type InputType string

const (
	InputText      InputType = "text"
	InputConfirm   InputType = "confirm"
	InputChoice    InputType = "choice"
	InputMultiText InputType = "multi_text" // Slots values collected in order
)

// InputRequest describes the constraints and type of input needed.
type InputRequest struct {
	Type    InputType `json:"type"`
	Prompt  Message   `json:"prompt"`
	Options []string  `json:"options,omitempty"`
	// Labels optionally carries display text for Options (same length).
	Labels    []Message `json:"labels,omitempty"`
	Default   string    `json:"default,omitempty"`
	Slots     int       `json:"slots,omitempty"`
	SlotLabel Message   `json:"slot_label,omitempty"`
	AllowBack bool      `json:"allow_back,omitempty"`
}

// Notices extracts the system messages from a list of actions.
func Notices(actions []ActionRequest) []Notice {
	var out []Notice
	for _, act := range actions {
		if act.Type != ActionSystemMessage {
			continue
		}
		if n, ok := act.Payload.(Notice); ok {
			out = append(out, n)
		}
	}
	return out
}

// FindInput returns the first input request in actions, if any.
func FindInput(actions []ActionRequest) (InputRequest, bool) {
	for _, act := range actions {
		if act.Type == ActionRequestInput {
			if req, ok := act.Payload.(InputRequest); ok {
				return req, true
			}
		}
	}
	return InputRequest{}, false
}
