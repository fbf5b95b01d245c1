// Command token mints a bearer token for local development.
// Usage: go run ./cmd/token -role editor -name "Ana" [-user <uuid>]
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/service"
)

func main() {
	role := flag.String("role", string(domain.RoleStudent), "student, owner, editor or admin")
	name := flag.String("name", "Dev User", "display name")
	user := flag.String("user", "", "user ID (random when empty)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		userID, err = uuid.Parse(*user)
		if err != nil {
			log.Fatalf("invalid user ID: %v", err)
		}
	}

	issued, err := service.NewAuthService(cfg.JWT).GenerateToken(userID, *name, domain.UserRole(*role))
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	log.Printf("user %s (%s), expires %s", userID, *role, issued.ExpiresAt.Format(time.RFC3339))
	fmt.Println(issued.AccessToken)
}
