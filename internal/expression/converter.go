package expression

import "fmt"

// Result holds a converted expression.
type Result struct {
	Infix   string  `json:"infix" yaml:"infix"`
	Postfix string  `json:"postfix" yaml:"postfix"`
	Tokens  []Token `json:"tokens" yaml:"tokens"` // postfix order
}

// InfixToPostfix converts a whitespace-tokenizable infix expression into a
// space-separated postfix expression.
func InfixToPostfix(expression string) (string, error) {
	result, err := Convert(expression)
	if err != nil {
		return "", err
	}
	return result.Postfix, nil
}

// Convert converts an infix expression and returns the postfix string together
// with the postfix token sequence.
func Convert(expression string) (*Result, error) {
	tokens, err := Lex(expression)
	if err != nil {
		return nil, err
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	var out Output
	for _, tok := range postfix {
		out.Append(tok.Literal)
	}

	return &Result{
		Infix:   expression,
		Postfix: out.String(),
		Tokens:  postfix,
	}, nil
}

// ToPostfix reorders classified infix tokens into postfix order using the
// shunting-yard algorithm. All operators are left-associative. An EOF token
// may only be followed by further EOF tokens.
func ToPostfix(tokens []Token) ([]Token, error) {
	stack := NewStack[Token]()
	output := make([]Token, 0, len(tokens))

	for i, tok := range tokens {
		switch tok.Type {
		case TokenEOF:
			for _, rest := range tokens[i+1:] {
				if rest.Type != TokenEOF {
					return nil, NewInvalidTokenError(rest.Pos, rest.Literal)
				}
			}
			return finish(stack, output)

		case TokenNumber:
			output = append(output, tok)

		case TokenLBracket:
			stack.Push(tok)

		case TokenRBracket:
			var err error
			output, err = closeBracket(stack, output, tok)
			if err != nil {
				return nil, err
			}

		case TokenOperator:
			for !stack.IsEmpty() {
				top, err := stack.Peek()
				if err != nil {
					return nil, err
				}
				if top.Type != TokenOperator || ComparePrecedence(top.Literal, tok.Literal) < 0 {
					break
				}
				if _, err := stack.Pop(); err != nil {
					return nil, err
				}
				output = append(output, top)
			}
			stack.Push(tok)

		default:
			return nil, NewInvalidTokenError(tok.Pos, tok.Literal)
		}
	}

	return finish(stack, output)
}

// closeBracket pops operators to the output until the left bracket matching
// closer is popped. The brackets themselves are discarded.
func closeBracket(stack *Stack[Token], output []Token, closer Token) ([]Token, error) {
	for {
		top, err := stack.Pop()
		if err != nil {
			return nil, NewMismatchedBracketError(closer.Pos, closer.Literal, "no matching opening bracket", err)
		}
		if top.Type != TokenLBracket {
			output = append(output, top)
			continue
		}
		if want := closingBracket(top.Literal); want != closer.Literal {
			msg := fmt.Sprintf("expected %q to close %q at position %d", want, top.Literal, top.Pos)
			return nil, NewMismatchedBracketError(closer.Pos, closer.Literal, msg, nil)
		}
		return output, nil
	}
}

// finish drains the remaining operators. Any bracket left on the stack was
// never closed.
func finish(stack *Stack[Token], output []Token) ([]Token, error) {
	for !stack.IsEmpty() {
		top, err := stack.Pop()
		if err != nil {
			return nil, err
		}
		if top.Type == TokenLBracket {
			return nil, NewMismatchedBracketError(top.Pos, top.Literal, "bracket is never closed", nil)
		}
		output = append(output, top)
	}
	return output, nil
}
