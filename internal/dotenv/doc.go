// Package dotenv parses .env files into an ordered environment mapping.
//
// Line format:
//
//	[export ]KEY=value      # optional comment
//	KEY = 'single quoted'   # taken literally
//	KEY: "double quoted"    # \X unescaped, $VAR substituted
//
// Keys are one or more word characters or dots. The separator is '='
// (optionally surrounded by spaces) or ':' followed by whitespace.
// Blank lines and comment lines are ignored. Any other line that does not
// match is reported as a Warning and skipped; parsing never fails.
//
// Variable references ($VAR or ${VAR}) in unquoted and double quoted values
// resolve against entries defined earlier in the same file, then against the
// ambient environment, then to an empty string. A reference preceded by a
// backslash is kept literally with the backslash removed.
package dotenv
