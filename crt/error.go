package crt

// InvalidRange - Custom error to inform that a sort was called with out of bounds indices
type InvalidRange struct {
	msg string
}

// Error - Used to notify that sort indices were out of bounds
func (E InvalidRange) Error() string {
	if E.msg == "" {
		return "invalid range"
	}
	return E.msg
}

// InvalidConfiguration - Custom error to inform that a component was constructed with invalid parameters
type InvalidConfiguration struct {
	msg string
}

// Error - Used to notify that construction parameters were invalid
func (E InvalidConfiguration) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// NotFound - Custom error to inform that no entry was found for a key.
// The table operations report absent keys through ordinary boolean results, this error is
// available for callers that prefer wrapping such results in an error of their own.
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}
