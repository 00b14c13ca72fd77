package app

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"golang.org/x/term"

	"github.com/RohithShyam024/credkit/internal/credential/usecase"
	"github.com/RohithShyam024/credkit/internal/pkg/goerror"
	"github.com/RohithShyam024/credkit/internal/pkg/stacktrace"
)

const menu = `
1. Register
2. Login
3. Change password
4. Remove user
5. Exit
`

// runLoop reads menu choices from stdin until the user exits or the store
// becomes unreachable. Unavailability ends the session; every other failure
// is reported and the menu shown again.
func (a *App) runLoop() int {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menu, "Choose an option: ")
		choice, ok := readLine(scanner)
		if !ok {
			return 0
		}

		if choice == "5" {
			fmt.Println("Bye.")
			return 0
		}

		var err error
		switch choice {
		case "1":
			err = a.dispatch(scanner, a.register)
		case "2":
			err = a.dispatch(scanner, a.login)
		case "3":
			err = a.dispatch(scanner, a.changePassword)
		case "4":
			err = a.dispatch(scanner, a.removeUser)
		default:
			fmt.Println("Unknown option.")
			continue
		}

		if err == nil {
			continue
		}

		fmt.Println(messageOf(err))
		if errors.Is(err, goerror.ErrUnavailable) {
			return exitCodeOf(err)
		}
	}
}

// dispatch runs one menu action and contains any panic so a single bad
// action cannot take down the whole session.
func (a *App) dispatch(scanner *bufio.Scanner, action func(*bufio.Scanner) error) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			paths := stacktrace.InternalPaths(debug.Stack())
			if len(paths) == 0 {
				slog.ErrorContext(a.ctx, "panic in menu action", "because", rvr, "stack", string(debug.Stack()))
			} else {
				slog.ErrorContext(a.ctx, "panic in menu action", "because", rvr, "stack", paths)
			}
			err = goerror.NewServer(fmt.Errorf("panic: %v", rvr))
		}
	}()

	return action(scanner)
}

func (a *App) register(scanner *bufio.Scanner) error {
	username, ok := prompt(scanner, "Username: ")
	if !ok {
		return nil
	}
	password, err := readPassword(scanner, "Password: ")
	if err != nil {
		return err
	}

	out, err := a.credentials.Register(a.ctx, usecase.RegisterInput{Username: username, Password: password})
	if err != nil {
		return err
	}

	fmt.Printf("Registered %q at %s.\n", username, out.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (a *App) login(scanner *bufio.Scanner) error {
	username, ok := prompt(scanner, "Username: ")
	if !ok {
		return nil
	}
	password, err := readPassword(scanner, "Password: ")
	if err != nil {
		return err
	}

	if err := a.credentials.Authenticate(a.ctx, usecase.AuthenticateInput{Username: username, Password: password}); err != nil {
		return err
	}

	fmt.Println("Login successful.")
	return nil
}

func (a *App) changePassword(scanner *bufio.Scanner) error {
	username, ok := prompt(scanner, "Username: ")
	if !ok {
		return nil
	}
	oldPassword, err := readPassword(scanner, "Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := readPassword(scanner, "New password: ")
	if err != nil {
		return err
	}

	err = a.credentials.ChangePassword(a.ctx, usecase.ChangePasswordInput{
		Username:    username,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}

	fmt.Println("Password changed.")
	return nil
}

func (a *App) removeUser(scanner *bufio.Scanner) error {
	username, ok := prompt(scanner, "Username: ")
	if !ok {
		return nil
	}

	if err := a.credentials.Remove(a.ctx, usecase.RemoveInput{Username: username}); err != nil {
		return err
	}

	fmt.Printf("Removed %q.\n", username)
	return nil
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	return readLine(scanner)
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// readPassword reads without echo when stdin is a terminal. Piped input
// falls back to a plain line read so scripted sessions still work.
func readPassword(scanner *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, ok := readLine(scanner)
		if !ok {
			return "", errors.New("input closed")
		}
		return line, nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func messageOf(err error) string {
	var ge *goerror.Error
	if errors.As(err, &ge) && ge.Msg() != "" {
		return ge.Msg()
	}
	if errors.Is(err, goerror.ErrUnavailable) {
		return "The credential store is unreachable."
	}
	return "Something went wrong. Please try again."
}

func exitCodeOf(err error) int {
	var ge *goerror.Error
	if errors.As(err, &ge) {
		return ge.ExitCode()
	}
	return 1
}
