// Package command parses shell-style input lines and applies them to a stack.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Name is the canonical name of a command.
type Name string

const (
	Help    Name = "help"
	New     Name = "new"
	Display Name = "display"
	Size    Name = "size"
	IsEmpty Name = "isempty"
	Push    Name = "push"
	Pop     Name = "pop"
	Peek    Name = "peek"
	Search  Name = "search"
	Destroy Name = "destroy"
	History Name = "history"
	Clear   Name = "clear"
	Quit    Name = "quit"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrMissingArgument  = errors.New("missing argument")
	ErrNotInteger       = errors.New("expected an integer")
	ErrEmptyLine        = errors.New("empty line")
)

// Definition describes a command as listed in the menu.
type Definition struct {
	Code        int
	Name        Name
	Aliases     []string
	Usage       mo.Option[string]
	MaxArgs     int
	Description string
}

// Definitions is the command menu in code order. Codes 0 through 8 follow the classic menu numbering.
var Definitions = []*Definition{
	{0, Help, []string{"h", "?"}, mo.None[string](), 0, "show this menu"},
	{1, New, []string{"create"}, mo.Some("[bounded|unbounded] [capacity]"), 2, "create a new stack, destroying the current one"},
	{2, Display, []string{"print", "show"}, mo.None[string](), 0, "print the elements from bottom to top"},
	{3, Size, []string{"len"}, mo.None[string](), 0, "print the number of elements (and capacity of a bounded stack)"},
	{4, IsEmpty, []string{"empty"}, mo.None[string](), 0, "report whether the stack is empty"},
	{5, Push, nil, mo.Some("<value>"), 1, "push an integer"},
	{6, Pop, nil, mo.None[string](), 0, "remove and print the top element"},
	{7, Peek, []string{"top"}, mo.None[string](), 0, "print the top element"},
	{8, Search, []string{"find"}, mo.Some("<value>"), 1, "print the bottom-up index of the first match"},
	{9, Destroy, []string{"delete", "free"}, mo.None[string](), 0, "release the current stack"},
	{10, History, nil, mo.None[string](), 0, "list previously entered lines"},
	{11, Clear, []string{"cls"}, mo.None[string](), 0, "clear the screen"},
	{12, Quit, []string{"q", "exit"}, mo.None[string](), 0, "leave the shell"},
}

// Menu renders the command menu, one command per line.
func Menu() string {
	var b strings.Builder
	b.WriteString("[COMMANDS]\n")
	for _, d := range Definitions {
		usage := string(d.Name)
		if d.Usage.IsPresent() {
			usage += " " + d.Usage.MustGet()
		}
		fmt.Fprintf(&b, "%2d - %s: %s\n", d.Code, usage, d.Description)
	}
	return b.String()
}

// Command is a parsed input line.
type Command struct {
	Name Name
	Args []string
}

// Lookup resolves a menu code, a name, an alias, an unambiguous prefix or,
// failing that, an unambiguous abbreviation whose letters appear in order in the name.
func Lookup(token string) (*Definition, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	if code, err := strconv.Atoi(token); err == nil {
		if d, ok := lo.Find(Definitions, func(d *Definition) bool { return d.Code == code }); ok {
			return d, nil
		}
		return nil, fmt.Errorf("%w: no command with code %d", ErrUnknownCommand, code)
	}

	if d, ok := lo.Find(Definitions, func(d *Definition) bool {
		return string(d.Name) == token || slices.Contains(d.Aliases, token)
	}); ok {
		return d, nil
	}

	names := lo.Map(Definitions, func(d *Definition, _ int) string { return string(d.Name) })

	// Prefixes win over abbreviations, so "is" is isempty rather than display or history.
	prefixed := lo.Filter(names, func(name string, _ int) bool { return strings.HasPrefix(name, token) })
	for _, matches := range [][]string{prefixed, fuzzy.Find(token, names)} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return byName(Name(matches[0])), nil
		default:
			return nil, fmt.Errorf("%w %q: could be %s", ErrAmbiguousCommand, token, strings.Join(matches, ", "))
		}
	}

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(token, a) < levenshtein.Distance(token, b)
	})
	return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, token, closest)
}

func byName(name Name) *Definition {
	d, _ := lo.Find(Definitions, func(d *Definition) bool { return d.Name == name })
	return d
}

// Parse splits line into a command and its arguments.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyLine
	}

	d, err := Lookup(fields[0])
	if err != nil {
		return Command{}, err
	}

	args := fields[1:]
	if len(args) > d.MaxArgs {
		return Command{}, fmt.Errorf("%w: %s takes at most %d", ErrTooManyArguments, d.Name, d.MaxArgs)
	}

	return Command{Name: d.Name, Args: args}, nil
}

// ParseValue parses a single integer argument.
func ParseValue(token string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, token)
	}
	return value, nil
}

// Arg returns the first argument as an integer.
func (c Command) Arg() (int, error) {
	if len(c.Args) == 0 {
		return 0, fmt.Errorf("%w: %s needs a value", ErrMissingArgument, c.Name)
	}
	return ParseValue(c.Args[0])
}
