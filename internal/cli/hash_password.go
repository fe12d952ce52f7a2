package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/google/subcommands"
)

// hashPasswordCmd prints a bcrypt hash for OWNER_PASSWORD_HASH.
type hashPasswordCmd struct {
	in  io.Reader
	out io.Writer
}

func (*hashPasswordCmd) Name() string     { return "hash-password" }
func (*hashPasswordCmd) Synopsis() string { return "hash the owner password read from stdin" }
func (*hashPasswordCmd) Usage() string {
	return `bookkeeping hash-password < password.txt

  Prints the value to put in OWNER_PASSWORD_HASH.
`
}

func (*hashPasswordCmd) SetFlags(*flag.FlagSet) {}

func (c *hashPasswordCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fail(err)
	}
	hash, err := utils.HashPassword(line)
	if err != nil {
		return usageError(err)
	}
	fmt.Fprintln(c.out, hash)
	return subcommands.ExitSuccess
}
