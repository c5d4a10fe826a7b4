// Package fuzztests holds fuzz targets for the byte-level components:
// the character classifier's UTF-8 walk, the token classifier and the
// line pre-scanner.
package fuzztests

import "testing"

// seeds cover the interesting byte shapes: well-formed multi-script
// text, overlong encodings, truncated and stray continuation bytes,
// and pre-scanner trigger material.
var seeds = []string{
	"hello world",
	"cannot",
	"Hеllο!",
	"سلام دنيا",
	"中文分析",
	"\xC0\x80",
	"\xE0\x80\xAF",
	"\xF0\x80\x80\xAF",
	"\x80\x81\x82",
	"\xE2\x82",
	"\xFF\xFE",
	"\xF8\x88\x80\x80\x80",
	"a\xED\xA0\x80b",
	"\xEF\xBB\xBFdoc",
	"www . example . com / path",
	"someone @ example . org",
	"&#1234; &amp; &nbsp;",
	"< a href=\"http://x\" >",
	"25km² n'ubwo ज़",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}
