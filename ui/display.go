package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/pieces/card"
)

var Stdout io.Writer = color.Output

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(Stdout, args...)
}

// Cards renders cards in their suit colours, separated by spaces.
func Cards(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.Paint())
	}
	return "[" + strings.Join(painted, " ") + "]"
}
