package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/marquee/internal/config"
	"golang.org/x/term"
)

// promptToken asks for a read access token without echoing it.
// The token lives for this session only and is never written to disk.
func promptToken(fd int, w io.Writer) (string, error) {
	fmt.Fprintln(w, "No TMDB token configured.")
	fmt.Fprintln(w, "Create a read access token at https://www.themoviedb.org/settings/api")
	fmt.Fprint(w, "TMDB read access token: ")

	tokenBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", config.ErrMissingToken
	}
	return token, nil
}
