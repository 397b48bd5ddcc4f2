package analyzer

import "strings"

// Language identifies a supported source language in canonical form.
type Language string

const (
	LangCPP        Language = "cpp"
	LangJava       Language = "java"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangGo         Language = "go"
)

// Supported is the language set surfaced to users, in display order.
var Supported = []Language{
	LangCPP,
	LangJava,
	LangPython,
	LangJavaScript,
	LangTypeScript,
	LangGo,
}

// aliases maps common spellings to canonical languages.
var aliases = map[string]Language{
	"c++":        LangCPP,
	"cpp":        LangCPP,
	"cxx":        LangCPP,
	"java":       LangJava,
	"python":     LangPython,
	"py":         LangPython,
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"node":       LangJavaScript,
	"typescript": LangTypeScript,
	"ts":         LangTypeScript,
	"go":         LangGo,
	"golang":     LangGo,
}

// Normalize maps a user-supplied language string to its canonical form.
// Unrecognized values pass through lowercased; the engine does not reject
// them, the checkers for terminator-using languages simply stay inactive.
func Normalize(s string) Language {
	key := strings.ToLower(strings.TrimSpace(s))
	if lang, ok := aliases[key]; ok {
		return lang
	}
	return Language(key)
}

// DisplayName returns the conventional spelling for a canonical language.
func (l Language) DisplayName() string {
	switch l {
	case LangCPP:
		return "C++"
	case LangJava:
		return "Java"
	case LangPython:
		return "Python"
	case LangJavaScript:
		return "JavaScript"
	case LangTypeScript:
		return "TypeScript"
	case LangGo:
		return "Go"
	default:
		return string(l)
	}
}

// terminator is the statement terminator for terminator-using languages.
const terminator = ';'

// UsesTerminator reports whether statements in the language are
// conventionally closed with a semicolon. Only these languages activate the
// terminator checker and the suggested-fix generator.
func (l Language) UsesTerminator() bool {
	switch l {
	case LangCPP, LangJava, LangJavaScript, LangTypeScript:
		return true
	default:
		return false
	}
}

// extLanguages maps file extensions to languages for CLI detection.
var extLanguages = map[string]Language{
	".cpp":  LangCPP,
	".cc":   LangCPP,
	".cxx":  LangCPP,
	".h":    LangCPP,
	".hpp":  LangCPP,
	".java": LangJava,
	".py":   LangPython,
	".js":   LangJavaScript,
	".jsx":  LangJavaScript,
	".mjs":  LangJavaScript,
	".ts":   LangTypeScript,
	".tsx":  LangTypeScript,
	".go":   LangGo,
}

// DetectLanguage guesses the language from a file name's extension.
// Returns "" when the extension is unknown.
func DetectLanguage(filename string) Language {
	for ext, lang := range extLanguages {
		if strings.HasSuffix(filename, ext) {
			return lang
		}
	}
	return ""
}
