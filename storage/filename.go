package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var trailingNumber = regexp.MustCompile(`^(.*?)_(\d+)$`)

// UniqueFilename derives a free output name from filename by suffixing a
// counter before the extension: "report.json" becomes "report_1.json",
// and an existing trailing counter is incremented instead of stacked.
// It recurses until the candidate does not exist on disk.
func UniqueFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	var candidate string
	if m := trailingNumber.FindStringSubmatch(base); m != nil {
		n, _ := strconv.Atoi(m[2])
		candidate = m[1] + "_" + strconv.Itoa(n+1) + ext
	} else {
		candidate = base + "_1" + ext
	}

	if _, err := os.Stat(candidate); err == nil {
		return UniqueFilename(candidate)
	}
	return candidate
}
