package expression

// AppendToOutput returns current with token appended, separated by a single
// space when both are non-empty.
func AppendToOutput(current, token string) string {
	switch {
	case token == "":
		return current
	case current == "":
		return token
	default:
		return current + " " + token
	}
}

// Output accumulates a space-separated postfix sequence through
// AppendToOutput.
type Output struct {
	text   string
	tokens []string
}

// Append adds token to the sequence. Empty tokens are ignored.
func (o *Output) Append(token string) {
	if token == "" {
		return
	}
	o.text = AppendToOutput(o.text, token)
	o.tokens = append(o.tokens, token)
}

// String returns the accumulated sequence.
func (o *Output) String() string {
	return o.text
}

// Tokens returns the appended tokens in order.
func (o *Output) Tokens() []string {
	return o.tokens
}
