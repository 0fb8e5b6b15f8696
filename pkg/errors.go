package tinycompiler

// LexicalError reports a character the tokenizer cannot classify.
type LexicalError struct {
	Message string
}

func (e *LexicalError) Error() string {
	return "lexical error: " + e.Message
}

// SyntaxError reports a token sequence the parser cannot accept.
// The first error aborts the whole compilation; there is no recovery.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Message
}
