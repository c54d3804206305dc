package errors

// Error Message Catalog
//
// Centralizing the format strings keeps wording consistent across the
// NameError/TypeError/Arithmetic families, the way go-dws's own catalog
// keeps its much larger error surface consistent.

const (
	ErrMsgUndefinedVariable     = "variable %q has not been defined"
	ErrMsgUndefinedFunction     = "function %q that takes %d parameter(s) has not been defined"
	ErrMsgOverloadedAsValue     = "function %q has multiple overloaded versions"
	ErrMsgMemberOnUndefined     = "attempting to assign member %q to undefined variable %q"
	ErrMsgMissingMember         = "member %q does not exist in object"
	ErrMsgWrongArity            = "function %q takes %d parameter(s) but %d were given"
	ErrMsgNotCallable           = "trying to call %q as a function, but it is of type %s"
	ErrMsgIncompatibleOperands  = "incompatible types %s for operation %s"
	ErrMsgNonBoolCondition      = "expected bool in condition but got %s"
	ErrMsgMemberOnNonObject     = "attempting to assign a member to %q, which is of type %s"
	ErrMsgMemberReadOnNonObject = "attempting to look up member %q in a non-object value of type %s"
	ErrMsgDivByZero             = "division by zero"
)
