package lexer

// ===== Классификаторы =====

// Только ASCII: alpha = [a-zA-Z_], digit = [0-9]. Это осознанное
// ограничение грамматики, а не упущение.
func isAlpha(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlphaNumeric(b byte) bool { return isAlpha(b) || isDigit(b) }
