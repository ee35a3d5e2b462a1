package domain

// Variant selects how a Notice is styled.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a dismissible message shown to the user after a flow step.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant,omitempty"`
}

// Destructive reports whether the notice reports a failure.
func (n Notice) Destructive() bool {
	return n.Variant == VariantDestructive
}
