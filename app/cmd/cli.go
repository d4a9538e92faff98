package cmd

import (
	"context"
	"log"
	"os"

	"github.com/gostore/admin/app/configs"
	"github.com/gostore/admin/app/db/seeders"
	"github.com/gostore/admin/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli(env configs.ENV) {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Populate the database with demo data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
