package redis

import (
	"github.com/momentohq/functions/payload"
)

// Command is one pipeline entry: a command name and its raw arguments.
// Construct them with GetCommand, NewSet or NewCommand.
type Command struct {
	Name string
	Args [][]byte
}

// GetCommand builds a GET for the given key.
func GetCommand(key []byte) Command {
	return Command{Name: "GET", Args: [][]byte{key}}
}

// DelCommand builds a DEL for the given key.
func DelCommand(key []byte) Command {
	return Command{Name: "DEL", Args: [][]byte{key}}
}

// SetBuilder assembles a SET command. The value is encoded when Build is
// called so codec failures surface there.
type SetBuilder struct {
	key       []byte
	value     payload.Encoder
	condition string
}

// NewSet starts a SET of value under key.
func NewSet(key []byte, value payload.Encoder) *SetBuilder {
	return &SetBuilder{key: key, value: value}
}

// IfExists makes the SET apply only when the key already exists (XX).
func (b *SetBuilder) IfExists() *SetBuilder {
	b.condition = "XX"
	return b
}

// IfNotExists makes the SET apply only when the key does not exist (NX).
func (b *SetBuilder) IfNotExists() *SetBuilder {
	b.condition = "NX"
	return b
}

// Build encodes the value and produces the command.
func (b *SetBuilder) Build() (Command, error) {
	encoded, err := b.value.EncodePayload()
	if err != nil {
		return Command{}, err
	}
	args := [][]byte{b.key, encoded.IntoBytes()}
	if b.condition != "" {
		args = append(args, []byte(b.condition))
	}
	return Command{Name: "SET", Args: args}, nil
}

// CommandBuilder assembles an arbitrary command, for anything this
// package has no dedicated builder for (FT.SEARCH, module commands and
// so on). Errors from encoded arguments are deferred to Build.
type CommandBuilder struct {
	cmd Command
	err error
}

// NewCommand starts a command with the given name.
func NewCommand(name string) *CommandBuilder {
	return &CommandBuilder{cmd: Command{Name: name}}
}

// Arg appends a raw byte argument.
func (b *CommandBuilder) Arg(arg []byte) *CommandBuilder {
	b.cmd.Args = append(b.cmd.Args, arg)
	return b
}

// StringArg appends a string argument.
func (b *CommandBuilder) StringArg(arg string) *CommandBuilder {
	return b.Arg([]byte(arg))
}

// Value encodes v and appends the result as an argument.
func (b *CommandBuilder) Value(v payload.Encoder) *CommandBuilder {
	if b.err != nil {
		return b
	}
	encoded, err := v.EncodePayload()
	if err != nil {
		b.err = err
		return b
	}
	return b.Arg(encoded.IntoBytes())
}

// Build returns the assembled command, or the first error recorded while
// assembling it.
func (b *CommandBuilder) Build() (Command, error) {
	if b.err != nil {
		return Command{}, b.err
	}
	return b.cmd, nil
}

// MustBuild is Build for commands whose arguments cannot fail to encode.
// It panics on a recorded error.
func (b *CommandBuilder) MustBuild() Command {
	cmd, err := b.Build()
	if err != nil {
		panic("redis: " + err.Error())
	}
	return cmd
}
