// Command issue-token mints an operator bearer token for the REST API and
// prints it to stdout.
//
// Usage:
//
//	issue-token -operator maria
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/callhistory-backend/internal/auth"
	"github.com/heartmarshall/callhistory-backend/internal/config"
)

func main() {
	operator := flag.String("operator", "", "operator name stored as the token subject")
	flag.Parse()

	if *operator == "" {
		log.Fatal("issue-token: -operator is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	token, err := tokens.IssueToken(*operator)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
