// Package main provides a small command line tool for inspecting and
// editing persisted settings stores (files, Redis or SQL databases).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"propkit/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// envStoreDSN selects the store backend, using the same DSN syntax as
// store.New. An empty value opens an in-memory store.
const envStoreDSN = "SETTINGS_DSN"

func main() {
	// Load .env if present so the store DSN can come from a dotenv file.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "get", "set", "delete", "clear":
		runStoreCommand(command, args)
	case "help", "-h", "--help":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Run 'settingsctl help' for usage.")
		os.Exit(1)
	}
}

// runStoreCommand opens the store named by SETTINGS_DSN, executes a single
// command against it and flushes the store before exiting.
func runStoreCommand(command string, args []string) {
	st, err := store.New(os.Getenv(envStoreDSN))
	if err != nil {
		logrus.Fatalf("Failed to open settings store: %v", err)
	}

	runErr := runCommand(st, os.Stdout, command, args)

	// Close flushes file backed stores. os.Exit bypasses deferred calls,
	// so close explicitly before reporting the command result.
	if closeErr := st.Close(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "settingsctl %s: %v\n", command, runErr)
		os.Exit(1)
	}
}

// runCommand executes one store command and writes its output to out.
func runCommand(st store.Store, out io.Writer, command string, args []string) error {
	switch command {
	case "get":
		if len(args) != 1 {
			return errors.New("usage: settingsctl get <key>")
		}
		value, err := st.Get(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("setting %q not found", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(value))
		return nil
	case "set":
		if len(args) != 2 {
			return errors.New("usage: settingsctl set <key> <value>")
		}
		return st.Set(args[0], []byte(args[1]))
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: settingsctl delete <key>")
		}
		return st.Delete(args[0])
	case "clear":
		if len(args) != 0 {
			return errors.New("usage: settingsctl clear")
		}
		return st.Clear()
	}
	return fmt.Errorf("unknown command %q", command)
}

// printHelp displays the general help information
func printHelp() {
	fmt.Println("settingsctl - Inspect and edit persisted application settings.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  settingsctl <command> [args]")
	fmt.Println()
	fmt.Println("Available Commands:")
	fmt.Println("  get <key>          Print the stored value for a setting key")
	fmt.Println("  set <key> <value>  Write a raw value for a setting key")
	fmt.Println("  delete <key>       Remove a setting key")
	fmt.Println("  clear              Remove every stored setting")
	fmt.Println("  help               Display this help message")
	fmt.Println()
	fmt.Println("The store is selected by the SETTINGS_DSN environment variable:")
	fmt.Println("  (empty)            In-memory store, useful only for dry runs")
	fmt.Println("  settings.json      JSON or YAML settings file")
	fmt.Println("  redis://host:6379  Redis server")
	fmt.Println("  anything else      SQLite, MySQL or PostgreSQL database DSN")
}
