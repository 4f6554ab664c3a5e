package editor

import (
	"strings"
	"unicode/utf8"
)

type triggerAction int

const (
	triggerKeep triggerAction = iota
	triggerOpen
	triggerClose
)

// menuTrigger decides what a text change does to the slash menu, given the
// text before the caret. A "/" opens the menu only at the start of the text
// or after a space or newline, so "3/4" never opens it. Once open the menu
// survives while the caret ends an unspaced token starting with "/".
func menuTrigger(before string) triggerAction {
	last, size := utf8.DecodeLastRuneInString(before)
	if size > 0 && last == '/' {
		prev := before[:len(before)-size]
		if prev == "" || strings.HasSuffix(prev, " ") || strings.HasSuffix(prev, "\n") {
			return triggerOpen
		}
		return triggerKeep
	}

	if strings.HasPrefix(trailingToken(before), "/") {
		return triggerKeep
	}
	return triggerClose
}

func trailingToken(s string) string {
	return s[strings.LastIndexAny(s, " \n")+1:]
}

// prefixBeforeSlash returns the text before the last "/"; the slash and
// anything typed after it are the command query and get discarded.
func prefixBeforeSlash(text string) string {
	i := strings.LastIndex(text, "/")
	if i < 0 {
		return ""
	}
	return text[:i]
}
