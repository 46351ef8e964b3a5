package main

import (
	"fmt"
	"io"

	"github.com/Xuerui-Yang/xuerui-stat/tree"
	"github.com/fatih/color"
)

var (
	hit  = color.New(color.FgGreen).SprintFunc()
	miss = color.New(color.FgRed).SprintFunc()
	head = color.New(color.Bold).SprintFunc()
)

/*
printConfusionMatrix writes the matrix with one row per true class and one
column per predicted class, correct predictions in green and wrong ones in
red.
*/
func printConfusionMatrix(w io.Writer, cm *tree.ConfusionMatrix) {
	width := 6
	for _, c := range cm.Categories {
		if len(c)+1 > width {
			width = len(c) + 1
		}
	}
	fmt.Fprintf(w, "%*s", width, "")
	for _, c := range cm.Categories {
		fmt.Fprint(w, head(fmt.Sprintf("%*s", width, c)))
	}
	fmt.Fprintln(w)
	for i, row := range cm.Counts {
		fmt.Fprint(w, head(fmt.Sprintf("%*s", width, cm.Categories[i])))
		for j, n := range row {
			cell := fmt.Sprintf("%*d", width, n)
			switch {
			case i == j:
				cell = hit(cell)
			case n > 0:
				cell = miss(cell)
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
}
