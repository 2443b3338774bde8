// CLI tool to create an API token and the bcrypt hash the server checks it against.
// Prints both; with -write, also stores API_TOKEN_HASH in the given .env file.
// Usage: go run ./cmd/hash-token [-token TOKEN] [-write .env]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	token := flag.String("token", "", "token to hash (default: a new random UUID)")
	envFile := flag.String("write", "", "write API_TOKEN_HASH into this .env file")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	t := strings.TrimSpace(*token)
	if t == "" {
		t = uuid.New().String()
	}

	hash, err := hashToken(t, *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing token: %v\n", err)
		os.Exit(1)
	}

	if *envFile != "" {
		if err := writeEnvHash(*envFile, hash); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	}

	fmt.Printf("API token created successfully!\n")
	fmt.Printf("  Token:          %s\n", t)
	fmt.Printf("  API_TOKEN_HASH: %s\n", hash)
	if *envFile != "" {
		fmt.Printf("  Written to:     %s\n", *envFile)
	} else {
		// Unquoted or double-quoted, godotenv would expand the hash's $ segments.
		fmt.Printf("\nAdd to .env with single quotes: API_TOKEN_HASH='%s'\n", hash)
	}
}

// hashToken bcrypt-hashes token. bcrypt ignores input past 72 bytes, so longer
// tokens are rejected instead of silently truncated.
func hashToken(token string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// writeEnvHash sets API_TOKEN_HASH in path, keeping every other variable.
// A missing file is created.
func writeEnvHash(path, hash string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		env = map[string]string{}
	}
	env["API_TOKEN_HASH"] = hash
	return godotenv.Write(env, path)
}
