package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"mokykla/app/config"
	"mokykla/app/database"
)

func main() {
	username := flag.String("admin", "admin", "administrator username")
	password := flag.String("password", "admin", "administrator password")
	demo := flag.Bool("demo", false, "also seed demo records")
	flag.Parse()

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

	if err := database.SeedAdministrator(db, *username, *password); err != nil {
		log.Fatal("Failed to seed administrator: ", err)
	}
	log.Printf("Administrator %q is in place", *username)

	if *demo {
		if err := seedDemo(db); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
		log.Println("Demo data loaded")
	}
}

// seedDemo loads a small data set: one group with a two-subject
// curriculum, a student enrolled through the group, a teacher on one
// subject and a single grade.
func seedDemo(db *sql.DB) error {
	groupID, err := database.CreateGroup(db, "IT-21")
	if err != nil {
		return err
	}

	mathID, err := database.CreateSubject(db, "Matematika")
	if err != nil {
		return err
	}
	progID, err := database.CreateSubject(db, "Programavimas")
	if err != nil {
		return err
	}

	for _, subjectID := range []int{mathID, progID} {
		if err := database.AssignSubjectToGroup(db, groupID, subjectID); err != nil {
			return err
		}
	}

	studentID, err := database.CreateStudent(db, "Jonas", "Petraitis")
	if err != nil {
		return err
	}
	if _, err := database.AssignStudentToGroup(db, studentID, groupID); err != nil {
		return err
	}

	teacherID, err := database.CreateTeacher(db, "Ona", "Kazlauskiene")
	if err != nil {
		return err
	}
	if err := database.AssignTeacherToSubject(db, teacherID, mathID); err != nil {
		return err
	}

	return database.AddGrade(db, studentID, mathID, 9)
}
