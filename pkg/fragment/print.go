package fragment

import "strings"

const indent = "  "

func writeFragment(sb *strings.Builder, f Fragment) {
	sb.WriteString("fragment " + f.Name + " on " + f.On + " {\n")
	writeSelections(sb, f.Selections, 1)
	sb.WriteString("}\n")
}

func writeSelections(sb *strings.Builder, sels []Selection, depth int) {
	pad := strings.Repeat(indent, depth)
	for _, sel := range sels {
		switch s := sel.(type) {
		case Field:
			sb.WriteString(pad)
			if s.Alias != "" {
				sb.WriteString(s.Alias + ": ")
			}
			sb.WriteString(s.Name)
			writeArgs(sb, s.Args)
			if len(s.Selections) > 0 {
				sb.WriteString(" {\n")
				writeSelections(sb, s.Selections, depth+1)
				sb.WriteString(pad + "}")
			}
			sb.WriteString("\n")
		case Spread:
			sb.WriteString(pad + "..." + s.Fragment + "\n")
		case InlineFragment:
			sb.WriteString(pad + "... on " + s.On + " {\n")
			writeSelections(sb, s.Selections, depth+1)
			sb.WriteString(pad + "}\n")
		}
	}
}

func writeArgs(sb *strings.Builder, args []Arg) {
	if len(args) == 0 {
		return
	}
	sb.WriteString("(")
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name + ": " + a.Value)
	}
	sb.WriteString(")")
}
