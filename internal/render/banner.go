package render

import "strings"

// banner is drawn at the top of every report
var banner = strings.Join([]string{
	"            c,_.--.,y",
	"            7 a.a(",
	"           (   ,_Y)",
	"           :  '---;",
	"       ___.'\\.  - (",
	"     .'\"\"\"S,._'--'_2..,_",
	"     |    ':::::=:::::  \\",
	"     .     f== ;-,---.' T",
	"      Y.   r,-,_/_      |",
	"      |:\\___.---' '---./",
	"      |'`             )",
	"       \\             ,",
	"       ':;,.________.;L",
	"       /  '---------' |",
	"       |              \\",
	"       L---'-,--.-'--,-'",
	"        T    /   \\   Y",
	"        |   Y    ,   |",
	"        |   \\    (   |",
	"        (   )     \\,_L",
	"        7-./      )  `,",
	"snd    /  _(      '._  \\",
	"     '---'           '--'",
}, "\n")

const (
	bannerTitle    = "SYSTEM INSPECTOR"
	bannerSubtitle = "by snd"
	timeLayout     = "2006-01-02 15:04:05"
)
