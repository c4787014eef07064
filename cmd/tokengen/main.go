package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"loadguard/internal/jwttoken"
)

// tokengen mints API bearer tokens for the verify endpoints. The signing key
// must match the server's API_SIGNING_KEY.
func main() {
	clientID := flag.String("client", "", "client identifier to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	signingKey := os.Getenv("API_SIGNING_KEY")
	if signingKey == "" {
		fmt.Fprintln(os.Stderr, "API_SIGNING_KEY must be set")
		os.Exit(1)
	}
	if *clientID == "" {
		fmt.Fprintln(os.Stderr, "-client is required")
		os.Exit(1)
	}

	tokens := jwttoken.NewService(signingKey, "loadguard", *ttl)
	token, err := tokens.GenerateToken(*clientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
