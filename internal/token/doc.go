// Package token defines lexical token kinds and the keyword table for the
// Lox scanner.
// Invariants:
//   - Token.Lexeme is the exact matched source slice, except string
//     literals, whose lexeme excludes the surrounding quotes.
//   - Token.Line is the 1-based line of the token's first character.
//   - The keyword table is immutable after package init and safe to share
//     across concurrently running scanners.
//   - Comments and whitespace never appear in the token stream.
package token
