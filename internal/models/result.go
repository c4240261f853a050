package models

// ActionType identifies what the host does when a result is chosen
type ActionType string

const (
	ActionCopyText   ActionType = "copy_text"
	ActionCopyImage  ActionType = "copy_image"
	ActionRunCommand ActionType = "run_command"
	ActionDialog     ActionType = "dialog"
)

// FieldType identifies how the host renders a dialog field
type FieldType string

const (
	FieldInput      FieldType = "input"
	FieldFilePicker FieldType = "file_picker"
)

// Result is one entry of a search response.
// Exactly one action is attached to every result.
type Result struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Tint        string `json:"tint,omitempty"`
	Action      Action `json:"action"`
}

// Action describes what happens when a result is activated.
// Which fields are set depends on Type.
type Action struct {
	Type ActionType `json:"type"`

	// copy_text
	Text string `json:"text,omitempty"`

	// copy_image
	Path string `json:"path,omitempty"`

	// run_command and dialog
	ExtensionID string   `json:"extension_id,omitempty"`
	Command     string   `json:"command,omitempty"`
	Args        []string `json:"args,omitempty"`

	// dialog
	Dialog *Dialog `json:"dialog,omitempty"`
}

// Dialog is an input form the host collects before running Command
type Dialog struct {
	Title      string  `json:"title"`
	ButtonText string  `json:"button_text"`
	Fields     []Field `json:"fields"`
}

// Field is a single dialog field, keyed by ID in the submitted form
type Field struct {
	ID           string       `json:"id"`
	Type         FieldType    `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	DefaultValue string       `json:"default_value,omitempty"`
	Filters      []FileFilter `json:"filters,omitempty"`
}

// FileFilter restricts a file picker to the given extensions
type FileFilter struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// CopyTextAction copies text to the clipboard on the host side
func CopyTextAction(text string) Action {
	return Action{Type: ActionCopyText, Text: text}
}

// CopyImageAction asks the host to copy the image file at path
func CopyImageAction(path string) Action {
	return Action{Type: ActionCopyImage, Path: path}
}

// RunCommandAction re-invokes the extension with command and args
func RunCommandAction(extensionID, command string, args ...string) Action {
	return Action{
		Type:        ActionRunCommand,
		ExtensionID: extensionID,
		Command:     command,
		Args:        args,
	}
}

// DialogAction opens a form and submits it to command with args
func DialogAction(extensionID, command string, dialog Dialog, args ...string) Action {
	return Action{
		Type:        ActionDialog,
		ExtensionID: extensionID,
		Command:     command,
		Args:        args,
		Dialog:      &dialog,
	}
}

// Notification is surfaced to the user by the host when a command fails validation
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
