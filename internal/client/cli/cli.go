package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"catalogkeeper/internal/client/catalog"
	"catalogkeeper/internal/client/session"
	"catalogkeeper/internal/shared"
	"catalogkeeper/internal/validation"
)

// Cli bundles the session manager and the catalog store behind the command
// surface. It owns no state of its own.
type Cli struct {
	session *session.Manager
	store   *catalog.Store
}

func New(session *session.Manager, store *catalog.Store) *Cli {
	return &Cli{
		session: session,
		store:   store,
	}
}

// PrintUsage writes the command overview to stdout
func PrintUsage() {
	fmt.Print(usageTemplate)
}

// FriendlyError rewords the classified error kinds for terminal output.
// Unclassified errors pass through unchanged.
func FriendlyError(err error) error {
	var vErr *validation.Error
	switch {
	case errors.Is(err, shared.ErrSessionExpired):
		return fmt.Errorf("your session has expired. Please run 'catalogkeeper login' again")
	case errors.Is(err, shared.ErrUnauthenticated):
		return fmt.Errorf("not authenticated. Please run 'catalogkeeper login' first")
	case errors.Is(err, shared.ErrInvalidCredential):
		return fmt.Errorf("stored credential was corrupt and has been discarded. Please run 'catalogkeeper login' again")
	case errors.Is(err, shared.ErrInvalidCredentials):
		return fmt.Errorf("invalid email or password")
	case errors.Is(err, shared.ErrNetworkFailure):
		return fmt.Errorf("could not reach the server. Check the --server address and try again")
	case errors.Is(err, shared.ErrNotFound):
		return fmt.Errorf("product not found")
	case errors.As(err, &vErr):
		return vErr
	default:
		return err
	}
}

// readInput reads a line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password from stdin without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(passwordBytes)), nil
}

// parseID parses a product id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id: %q", arg)
	}
	return id, nil
}
