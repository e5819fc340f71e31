// Command hashpass prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
//
// The password is taken from the first argument or, if absent, the first line of stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/polkiloo/pawshope/internal/pkg/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost, 0 selects the library default")
	flag.Parse()

	password, err := readPassword(flag.Arg(0), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpass: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.NewBcryptHasher(*cost).Hash(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpass: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(arg string, in io.Reader) (string, error) {
	if arg != "" {
		return arg, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password required")
	}
	return line, nil
}
