package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio implements IO on top of the process streams
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	inFd  int
	isTTY bool
}

// NewStdio returns an IO bound to os.Stdin and os.Stdout
func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout)
}

func newStdio(in *os.File, out io.Writer) *Stdio {
	fd := int(in.Fd())
	return &Stdio{
		// один reader на всю сессию, иначе ввод из pipe теряется между запросами
		in:    bufio.NewReader(in),
		out:   out,
		inFd:  fd,
		isTTY: term.IsTerminal(fd),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword reads without echo on a terminal, and a plain line otherwise
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	if !s.isTTY {
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(s.inFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func (s *Stdio) readLine() (string, error) {
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
