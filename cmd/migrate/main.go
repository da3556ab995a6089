package main

import (
	"log"

	"github.com/joho/godotenv"

	"mokykla/app/config"
	"mokykla/app/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := config.OpenDB(config.Load())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		log.Fatal("Failed to create schema: ", err)
	}

	log.Println("Schema is up to date")
}
