package postgresql

import (
	"context"

	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, ping location.Ping) (location.Ping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO location_pings (id, employee_id, location, timestamp)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, employee_id, location, timestamp
	`
	var created location.Ping
	err := q.QueryRow(ctx, query, newRowID(), ping.EmployeeID, ping.Location).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Location,
		&created.Timestamp,
	)
	if err != nil {
		return location.Ping{}, database.Unavailable("create location ping", err)
	}
	return created, nil
}

// List implements location.LocationRepository.
func (r *locationRepositoryImpl) List(ctx context.Context) ([]location.Ping, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, location, timestamp
		FROM location_pings
		ORDER BY timestamp DESC, id DESC
	`)
	if err != nil {
		return nil, database.Unavailable("list location pings", err)
	}
	defer rows.Close()

	pings := []location.Ping{}
	for rows.Next() {
		var p location.Ping
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Location, &p.Timestamp); err != nil {
			return nil, database.Unavailable("scan location ping", err)
		}
		pings = append(pings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("list location pings", err)
	}
	return pings, nil
}
