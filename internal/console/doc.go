// Package console is the line-based operator interface shared by the shell,
// the run engine and the editor: it prints text, reads one line of input at
// a time and interprets yes/no answers.
//
// Output is styled with lipgloss through a renderer bound to the output
// writer, so styling degrades to plain text whenever the writer is not a
// terminal (pipes, files, test buffers).
package console
