package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	userRepo "github.com/muhammadheryan/vastu-shakti/repository/user"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// createadmin bootstraps an admin account. Admins cannot be created through the API.
func main() {
	name := flag.String("name", "Admin", "admin display name")
	email := flag.String("email", "", "admin email")
	mobile := flag.String("mobile", "", "admin mobile number")
	password := flag.String("password", "", "admin password (min 6 chars)")
	flag.Parse()

	if *email == "" || *mobile == "" || len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email EMAIL -mobile MOBILE -password PASSWORD [-name NAME]")
		os.Exit(2)
	}

	cfg := config.Load()
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := userRepo.NewUserRepository(db)
	normalized := strings.ToLower(strings.TrimSpace(*email))

	existing, err := repo.Get(ctx, &model.UserFilter{Email: normalized})
	if err != nil {
		logger.Fatal("err get user", zap.Error(err))
	}
	if existing != nil {
		logger.Fatal("user already exists", zap.String("email", normalized))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), constant.BcryptCost)
	if err != nil {
		logger.Fatal("err hash password", zap.Error(err))
	}

	now := time.Now()
	user, err := repo.Create(ctx, &model.UserEntity{
		Name:         strings.TrimSpace(*name),
		Email:        normalized,
		Mobile:       strings.TrimSpace(*mobile),
		PasswordHash: string(hash),
		Language:     constant.LanguageEnglish,
		Role:         constant.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Fatal("err create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.Uint64("user_id", user.ID), zap.String("email", user.Email))
}
