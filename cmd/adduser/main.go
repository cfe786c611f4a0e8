// Command adduser creates a blog user directly in the database, bypassing
// the HTTP API. Useful for seeding an instance before it is exposed.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"moodblog/internal/server/models"
	"moodblog/internal/server/repositories/users"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	var (
		dsn    = flag.String("d", "", "PostgreSQL DSN")
		email  = flag.String("email", "", "user email")
		bio    = flag.String("bio", "", "user bio")
		avatar = flag.String("avatar", "", "user avatar (defaults to 👤)")
	)
	flag.Parse()

	if *dsn == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println("Enter password")
	password, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("password read error: %v", err)
	}
	if len(password) == 0 {
		log.Fatal("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("password hash error: %v", err)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	user := &models.User{
		Email:        *email,
		PasswordHash: string(hash),
		Bio:          *bio,
		Avatar:       *avatar,
	}
	if user.Avatar == "" {
		user.Avatar = models.DefaultAvatar
	}

	ctx := context.Background()
	created, err := users.NewPostgresRepository(db).Create(ctx, user)
	if err != nil {
		log.Fatalf("user create error: %v", err)
	}

	fmt.Printf("created user %d (%s)\n", created.ID, created.Email)
}
