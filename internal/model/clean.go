package model

import "fmt"

// CleanAction is a single invocation form of the clean tool.
type CleanAction int

const (
	// ActionFull removes the whole target directory.
	ActionFull CleanAction = iota
	// ActionDoc removes generated documentation only.
	ActionDoc
	// ActionRelease removes release artifacts only.
	ActionRelease
)

// Args returns the tool arguments for the action.
func (a CleanAction) Args() []string {
	switch a {
	case ActionDoc:
		return []string{"clean", "--doc"}
	case ActionRelease:
		return []string{"clean", "--release"}
	default:
		return []string{"clean"}
	}
}

func (a CleanAction) String() string {
	switch a {
	case ActionFull:
		return "all"
	case ActionDoc:
		return "doc"
	case ActionRelease:
		return "release"
	default:
		return fmt.Sprintf("CleanAction(%d)", int(a))
	}
}

// DeleteMode selects which clean actions run at every build root.
//
// The zero value is the full clean. A partial mode with both flags unset is a
// valid no-op and is not the same as the full clean.
type DeleteMode struct {
	partial bool
	doc     bool
	release bool
}

// DeleteAll returns the mode running the tool's own full clean.
func DeleteAll() DeleteMode {
	return DeleteMode{}
}

// DeletePartial returns a mode running only the requested partial cleans.
func DeletePartial(doc, release bool) DeleteMode {
	return DeleteMode{partial: true, doc: doc, release: release}
}

// NewDeleteMode builds the mode from user flags: when neither flag is
// requested the full clean is selected.
func NewDeleteMode(doc, release bool) DeleteMode {
	if !doc && !release {
		return DeleteAll()
	}

	return DeletePartial(doc, release)
}

// IsAll reports whether the mode is the full clean.
func (d DeleteMode) IsAll() bool {
	return !d.partial
}

// Doc reports whether documentation is cleaned in partial mode.
func (d DeleteMode) Doc() bool {
	return d.partial && d.doc
}

// Release reports whether release artifacts are cleaned in partial mode.
func (d DeleteMode) Release() bool {
	return d.partial && d.release
}

// Actions lists the tool invocations for the mode, in execution order.
func (d DeleteMode) Actions() []CleanAction {
	if !d.partial {
		return []CleanAction{ActionFull}
	}

	actions := make([]CleanAction, 0, 2)
	if d.doc {
		actions = append(actions, ActionDoc)
	}

	if d.release {
		actions = append(actions, ActionRelease)
	}

	return actions
}

func (d DeleteMode) String() string {
	if !d.partial {
		return "All"
	}

	return fmt.Sprintf("Partial{doc: %t, release: %t}", d.doc, d.release)
}
