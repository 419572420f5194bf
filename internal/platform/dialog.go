package platform

// DialogKind selects the icon and button set of a modal dialog.
type DialogKind int

const (
	// DialogInfo shows an information icon with a single OK button.
	DialogInfo DialogKind = iota
	// DialogWarning shows a warning icon with a single OK button.
	DialogWarning
	// DialogError shows an error icon with a single OK button.
	DialogError
	// DialogYesNo asks a question with Yes and No buttons.
	DialogYesNo
	// DialogOkCancel asks for confirmation with OK and Cancel buttons.
	DialogOkCancel
)

// String returns a human-readable name for the dialog kind.
func (k DialogKind) String() string {
	switch k {
	case DialogInfo:
		return "info"
	case DialogWarning:
		return "warning"
	case DialogError:
		return "error"
	case DialogYesNo:
		return "yesno"
	case DialogOkCancel:
		return "okcancel"
	default:
		return "unknown"
	}
}

// DialogResult is the canonical result of a modal dialog, independent of
// the platform dialog facility that produced it.
type DialogResult int

const (
	// ResultOk is the OK button, and the fallback for any native result
	// the mapping table does not cover.
	ResultOk DialogResult = iota
	// ResultCancel is the Cancel button.
	ResultCancel
	// ResultYes is the Yes button.
	ResultYes
	// ResultNo is the No button.
	ResultNo
)

// String returns a human-readable name for the dialog result.
func (r DialogResult) String() string {
	switch r {
	case ResultOk:
		return "ok"
	case ResultCancel:
		return "cancel"
	case ResultYes:
		return "yes"
	case ResultNo:
		return "no"
	default:
		return "unknown"
	}
}

// normalizeKind maps unrecognized kinds to DialogInfo so every adapter
// shares the same default.
func normalizeKind(kind DialogKind) DialogKind {
	switch kind {
	case DialogInfo, DialogWarning, DialogError, DialogYesNo, DialogOkCancel:
		return kind
	default:
		return DialogInfo
	}
}
