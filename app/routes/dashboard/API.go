package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/EduplannerDev/Eduplanner-sub001/app/database"
	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
	"github.com/EduplannerDev/Eduplanner-sub001/app/routes/auth"
)

// GetDashboardAPI resolves the highest role the user holds and returns the
// matching rollup: platform-wide for administrators, plantel-scoped for
// directors, own-grupos for teachers.
func GetDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	user := auth.CurrentUser(c)

	switch {
	case user.IsAdministrator():
		stats, err := database.GetAdminDashboardStats(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard"})
		}
		return c.JSON(fiber.Map{"role": models.RoleAdministrator, "stats": stats})

	case user.HasRole(models.RoleDirector):
		plantelID := c.Query("plantel_id")
		if plantelID == "" {
			for _, a := range user.Assignments {
				if a.Role == models.RoleDirector {
					plantelID = a.PlantelID
					break
				}
			}
		}
		if plantelID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "No plantel to report on"})
		}

		stats, err := database.GetDirectorDashboardStats(db, plantelID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard"})
		}
		return c.JSON(fiber.Map{"role": models.RoleDirector, "stats": stats})

	case user.HasRole(models.RoleTeacher):
		stats, err := database.GetTeacherDashboardStats(db, user.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard"})
		}
		return c.JSON(fiber.Map{"role": models.RoleTeacher, "stats": stats})
	}

	return c.Status(403).JSON(fiber.Map{"error": "No active role assignment"})
}
