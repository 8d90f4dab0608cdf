// Command timesheet-useradd creates a login account. The HTTP API has no
// sign-up route, so accounts are provisioned with this tool.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/auth"
	"github.com/amirhosseinghanipour/timesheet/internal/config"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/postgres"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/security"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "password (min 8 characters)")
	name := flag.String("name", "", "display name")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
	})
	register := auth.NewRegisterUser(postgres.NewUserRepository(db.New(pool)), hasher)
	res, err := register.Execute(ctx, auth.RegisterUserInput{Email: *email, Password: *password, FullName: *name})
	if err != nil {
		log.Fatal().Err(err).Msg("create user")
	}
	log.Info().Str("user_id", res.User.ID).Str("email", res.User.Email).Msg("user created")
}
