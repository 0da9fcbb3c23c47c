package database

import (
	"database/sql"
	"fmt"

	"github.com/EduplannerDev/Eduplanner-sub001/app/models"
)

func GetPlanteles(db *sql.DB) ([]*models.Plantel, error) {
	query := `
		SELECT id, name, COALESCE(cct, ''), COALESCE(address, ''), COALESCE(ciclo_escolar, ''),
		       max_usuarios, max_profesores, max_directores, is_active, created_at, updated_at
		FROM planteles
		WHERE is_active = true
		ORDER BY name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch planteles: %w", err)
	}
	defer rows.Close()

	var planteles []*models.Plantel
	for rows.Next() {
		p, err := scanPlantel(rows)
		if err != nil {
			return nil, err
		}
		planteles = append(planteles, p)
	}
	return planteles, rows.Err()
}

func GetPlantelByID(db *sql.DB, plantelID string) (*models.Plantel, error) {
	query := `
		SELECT id, name, COALESCE(cct, ''), COALESCE(address, ''), COALESCE(ciclo_escolar, ''),
		       max_usuarios, max_profesores, max_directores, is_active, created_at, updated_at
		FROM planteles
		WHERE id = $1 AND is_active = true
	`
	p := &models.Plantel{}
	var maxUsuarios, maxProfesores, maxDirectores sql.NullInt64

	err := db.QueryRow(query, plantelID).Scan(
		&p.ID, &p.Name, &p.CCT, &p.Address, &p.CicloEscolar,
		&maxUsuarios, &maxProfesores, &maxDirectores,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "plantel", ID: plantelID}
		}
		return nil, err
	}

	p.MaxUsuarios = nullIntPtr(maxUsuarios)
	p.MaxProfesores = nullIntPtr(maxProfesores)
	p.MaxDirectores = nullIntPtr(maxDirectores)
	return p, nil
}

func CreatePlantel(db *sql.DB, p *models.Plantel) error {
	query := `
		INSERT INTO planteles (name, cct, address, ciclo_escolar, max_usuarios, max_profesores, max_directores)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at
	`
	return db.QueryRow(query, p.Name, p.CCT, p.Address, p.CicloEscolar,
		p.MaxUsuarios, p.MaxProfesores, p.MaxDirectores,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func UpdatePlantel(db *sql.DB, p *models.Plantel) error {
	query := `
		UPDATE planteles
		SET name = $1, cct = $2, address = $3, ciclo_escolar = $4,
		    max_usuarios = $5, max_profesores = $6, max_directores = $7, updated_at = NOW()
		WHERE id = $8 AND is_active = true
	`
	result, err := db.Exec(query, p.Name, p.CCT, p.Address, p.CicloEscolar,
		p.MaxUsuarios, p.MaxProfesores, p.MaxDirectores, p.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return &models.NotFoundError{Entity: "plantel", ID: p.ID}
	}
	return nil
}

func DeactivatePlantel(db *sql.DB, plantelID string) error {
	query := `UPDATE planteles SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, plantelID)
	return err
}

// GetOccupancy counts active assignments at a plantel broken down by role.
// The counts are computed at query time; they are never cached, since the
// capacity guard requires a point-in-time snapshot.
func GetOccupancy(db *sql.DB, plantelID string) (models.Occupancy, error) {
	var occ models.Occupancy
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE role = 'teacher'),
		       COUNT(*) FILTER (WHERE role = 'director'),
		       COUNT(*) FILTER (WHERE role = 'administrator')
		FROM plantel_assignments
		WHERE plantel_id = $1 AND is_active = true
	`
	err := db.QueryRow(query, plantelID).Scan(&occ.Users, &occ.Teachers, &occ.Directors, &occ.Administrators)
	if err != nil {
		return occ, fmt.Errorf("failed to count occupancy: %w", err)
	}
	return occ, nil
}

func scanPlantel(rows *sql.Rows) (*models.Plantel, error) {
	p := &models.Plantel{}
	var maxUsuarios, maxProfesores, maxDirectores sql.NullInt64

	err := rows.Scan(
		&p.ID, &p.Name, &p.CCT, &p.Address, &p.CicloEscolar,
		&maxUsuarios, &maxProfesores, &maxDirectores,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan plantel: %w", err)
	}

	p.MaxUsuarios = nullIntPtr(maxUsuarios)
	p.MaxProfesores = nullIntPtr(maxProfesores)
	p.MaxDirectores = nullIntPtr(maxDirectores)
	return p, nil
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
