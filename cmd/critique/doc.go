// Critique is a code-review assistant for pasted snippets.
//
// It reviews a snippet with fast text heuristics (bracket balance, quote
// closure, missing statement terminators, a coarse complexity estimate, and
// a suggested fix) or with an LLM provider, in the terminal or through a
// browser UI.
//
// Usage:
//
//	critique review main.js           # review a file
//	cat snippet.py | critique review --lang python
//	critique serve                    # run the browser UI
//	critique languages                # list supported languages
//
// See https://github.com/critique-dev/critique for full documentation.
package main
