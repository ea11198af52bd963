package expression

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_BasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []Token
	}{
		{
			input: "1 + 2",
			expected: []Token{
				{Type: TokenNumber, Literal: "1", Pos: 0},
				{Type: TokenOperator, Literal: "+", Pos: 2},
				{Type: TokenNumber, Literal: "2", Pos: 4},
				{Type: TokenEOF, Literal: "", Pos: 5},
			},
		},
		{
			input: "( 12 ) * [ 3 ]",
			expected: []Token{
				{Type: TokenLBracket, Literal: "(", Pos: 0},
				{Type: TokenNumber, Literal: "12", Pos: 2},
				{Type: TokenRBracket, Literal: ")", Pos: 5},
				{Type: TokenOperator, Literal: "*", Pos: 7},
				{Type: TokenLBracket, Literal: "[", Pos: 9},
				{Type: TokenNumber, Literal: "3", Pos: 11},
				{Type: TokenRBracket, Literal: "]", Pos: 13},
				{Type: TokenEOF, Literal: "", Pos: 14},
			},
		},
		{
			input: "7-8/9",
			expected: []Token{
				{Type: TokenNumber, Literal: "7", Pos: 0},
				{Type: TokenOperator, Literal: "-", Pos: 1},
				{Type: TokenNumber, Literal: "8", Pos: 2},
				{Type: TokenOperator, Literal: "/", Pos: 3},
				{Type: TokenNumber, Literal: "9", Pos: 4},
				{Type: TokenEOF, Literal: "", Pos: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			for _, expected := range tt.expected {
				tok := lexer.NextToken()
				assert.Equal(t, expected, tok)
			}
		})
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lexer := NewLexer("  ")
	for i := 0; i < 3; i++ {
		assert.Equal(t, TokenEOF, lexer.NextToken().Type)
	}
}

func TestLexer_IllegalLiterals(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{input: "abc", literal: "abc"},
		{input: "12a1", literal: "12a1"},
		{input: "^", literal: "^"},
		{input: "3.14", literal: "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			assert.Equal(t, TokenIllegal, tok.Type)
			assert.Equal(t, tt.literal, tok.Literal)
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "", expected: nil},
		{input: "   \t\n", expected: nil},
		{input: "1", expected: []string{"1"}},
		{input: "1 + 2", expected: []string{"1", "+", "2"}},
		{input: "  1   +\t2 ", expected: []string{"1", "+", "2"}},
		{input: "1+2", expected: []string{"1", "+", "2"}},
		{input: "1+2+3", expected: []string{"1", "+", "2", "+", "3"}},
		{input: "1+2*3", expected: []string{"1", "+", "2", "*", "3"}},
		{input: "(1+2)*3", expected: []string{"(", "1", "+", "2", ")", "*", "3"}},
		{input: "x + y", expected: []string{"x", "+", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_UnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no-break space", "1\u00a0+ 2"},
		{"ideographic space", "1\u3000+ 2"},
		{"em space", "1 +\u2003 2"},
		{"next line", "1\u0085+\u00852"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{"1", "+", "2"}, Tokenize(tt.input))

			postfix, err := InfixToPostfix(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "1 2 +", postfix)
		})
	}
}

func TestLexer_PositionsAreByteOffsets(t *testing.T) {
	tokens, err := Lex("1\u00a0+\u3000a")
	require.Error(t, err)
	assert.Nil(t, tokens)

	var invalid *InvalidTokenError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "a", invalid.Literal)
	assert.Equal(t, 7, invalid.Position)

	l := NewLexer("1\u00a0+")
	assert.Equal(t, Token{Type: TokenNumber, Literal: "1", Pos: 0}, l.NextToken())
	assert.Equal(t, Token{Type: TokenOperator, Literal: "+", Pos: 3}, l.NextToken())
	assert.Equal(t, Token{Type: TokenEOF, Literal: "", Pos: 4}, l.NextToken())
}

func TestTokenize_Restartable(t *testing.T) {
	input := "[ 4 + 5 ] / 6"
	assert.Equal(t, Tokenize(input), Tokenize(input))
}

func TestLex(t *testing.T) {
	tokens, err := Lex("10 * ( 2 - 3 )")
	require.NoError(t, err)
	require.Len(t, tokens, 7)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, TokenOperator, tokens[1].Type)
	assert.Equal(t, TokenLBracket, tokens[2].Type)
	assert.Equal(t, TokenRBracket, tokens[6].Type)
	assert.Equal(t, 13, tokens[6].Pos)
}

func TestLex_InvalidToken(t *testing.T) {
	_, err := Lex("1 + a")
	require.Error(t, err)

	var invalid *InvalidTokenError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "a", invalid.Literal)
	assert.Equal(t, 4, invalid.Position)
}
