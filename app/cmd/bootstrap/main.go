package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/EduplannerDev/Eduplanner-sub001/app/config"
	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

// Creates the first administrator account and optionally assigns it to an
// existing plantel. Run once against a fresh database.
func main() {
	email := flag.String("email", "", "administrator email (required)")
	password := flag.String("password", "", "initial password (required)")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "EduPlanner", "last name")
	plantelID := flag.String("plantel", "", "plantel id to assign the administrator to (optional)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	fmt.Printf("User created: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)

	if *plantelID != "" {
		assignment, err := database.ActivateAssignment(db, user.ID, *plantelID, models.RoleAdministrator)
		if err != nil {
			log.Fatal("Failed to assign administrator:", err)
		}
		fmt.Printf("Assigned as administrator at plantel %s (assignment %s)\n", *plantelID, assignment.ID)
	}
}
