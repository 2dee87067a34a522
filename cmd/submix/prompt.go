package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// stdioConfirmer asks overwrite questions on the terminal. When stdin is not
// a TTY there is nobody to answer, so every question defaults to no.
type stdioConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newStdioConfirmer() stdioConfirmer {
	return stdioConfirmer{in: os.Stdin, out: os.Stdout}
}

func (s stdioConfirmer) Confirm(prompt string) bool {
	if file, ok := s.in.(*os.File); ok {
		fd := file.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}

	fmt.Fprintf(s.out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(s.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
