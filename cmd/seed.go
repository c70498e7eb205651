// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/supply-service/internal/db"
	"github.com/canonical/supply-service/internal/logging"
	"github.com/canonical/supply-service/internal/monitoring"
	"github.com/canonical/supply-service/internal/storage"
	"github.com/canonical/supply-service/internal/tracing"
	"github.com/canonical/supply-service/internal/types"
	"github.com/canonical/supply-service/pkg/authentication"
)

// seedCmd bootstraps an operator account so the API is usable on a fresh
// database. Run migrate up first.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial operator account",
	Long:  `Create the initial operator (admin) account, run after "migrate up" on a fresh database`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		return seed(cmd, dsn, email, password, firstName, lastName)
	},
}

func init() {
	seedCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	seedCmd.Flags().String("email", "", "Operator email address")
	seedCmd.Flags().String("password", "", "Operator password, generated when empty")
	seedCmd.Flags().String("first-name", "System", "Operator first name")
	seedCmd.Flags().String("last-name", "Administrator", "Operator last name")
	_ = seedCmd.MarkFlagRequired("dsn")
	_ = seedCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, dsn, email, password, firstName, lastName string) error {
	logger := logging.NewNoopLogger()
	monitor := monitoring.NewNoopMonitor("supply-service")
	tracer := tracing.NewNoopTracer()

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	generated := false
	if password == "" {
		password, err = authentication.GenerateTempPassword()
		if err != nil {
			return err
		}
		generated = true
	}

	hash, err := authentication.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	user, err := s.CreateUser(cmd.Context(), &types.User{
		Email:        email,
		PasswordHash: hash,
		Role:         types.RoleAdmin,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("an account with email %q already exists", email)
		}
		return fmt.Errorf("failed to create operator account: %v", err)
	}

	fmt.Printf("Operator account created: %s (ID: %s)\n", user.Email, user.ID)
	if generated {
		fmt.Printf("Generated password: %s\n", password)
	}
	return nil
}
