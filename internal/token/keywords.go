package token

// keywords — явная статическая таблица (text, kind); собирается один раз
// при старте и после этого не изменяется.
var keywords = map[string]Kind{
	"and":    KwAnd,
	"assert": KwAssert,
	"class":  KwClass,
	"else":   KwElse,
	"false":  KwFalse,
	"fun":    KwFun,
	"for":    KwFor,
	"if":     KwIf,
	"nil":    KwNil,
	"or":     KwOr,
	"print":  KwPrint,
	"return": KwReturn,
	"super":  KwSuper,
	"this":   KwThis,
	"true":   KwTrue,
	"var":    KwVar,
	"while":  KwWhile,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Совпадение только целиком и с учётом регистра; префиксы ключевых слов
// внутри идентификаторов сюда не попадают.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// KeywordCount returns the number of reserved words in the table.
func KeywordCount() int { return len(keywords) }
