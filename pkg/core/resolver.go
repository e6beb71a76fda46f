package core

import (
	"strconv"
	"strings"
)

// Stem returns name with one trailing .txt removed (case-insensitive).
func Stem(name string) string {
	if IsNoteFile(name) {
		return name[:len(name)-len(NoteExt)]
	}
	return name
}

// IsNoteFile reports whether name ends in .txt, ignoring case.
func IsNoteFile(name string) bool {
	return len(name) >= len(NoteExt) && strings.EqualFold(name[len(name)-len(NoteExt):], NoteExt)
}

// ResolveName computes the filename a save of title should write to, given
// the names currently held in the index.
//
// A title with no entry of the same stem maps to "<title>.txt". Otherwise the
// suffix counts every entry whose stem is the title or starts with
// "<title>_", so ["A.txt"] gives "A_2.txt" and ["A.txt", "A_2.txt"] gives
// "A_3.txt". The result is never checked against the filesystem.
func ResolveName(title string, existing []string) string {
	taken := false
	for _, name := range existing {
		if Stem(name) == title {
			taken = true
			break
		}
	}
	if !taken {
		return title + NoteExt
	}

	prefix := title + "_"
	count := 1
	for _, name := range existing {
		stem := Stem(name)
		if stem == title || strings.HasPrefix(stem, prefix) {
			count++
		}
	}
	return prefix + strconv.Itoa(count) + NoteExt
}
