package types

// Rule is the flag set governing one named action's authorization requirements
type Rule struct {
	Action string
	Flags  Flag
}

// NeedsGradeable tells if evaluating the rule requires a gradeable argument
func (r Rule) NeedsGradeable() bool {
	return r.Flags.Includes(RequiresGradeable)
}

// NeedsComponent tells if evaluating the rule requires a component argument
func (r Rule) NeedsComponent() bool {
	return r.Flags.Includes(RequiresComponent)
}
