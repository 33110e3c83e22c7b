package mongodb

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
)

type attendanceDocument struct {
	ID               string           `bson:"_id"`
	EmployeeID       string           `bson:"employee_id"`
	AttendanceStatus statusDocument   `bson:"attendance_status"`
	Location         locationDocument `bson:"location"`
	LocationName     string           `bson:"location_name"`
	PhotoURL         *string          `bson:"photo_url,omitempty"`
	Time             *time.Time       `bson:"time,omitempty"`
	CreatedAt        time.Time        `bson:"created_at"`
}

type statusDocument struct {
	IsPresent bool `bson:"is_present"`
	IsLeave   bool `bson:"is_leave"`
	IsHalfDay bool `bson:"is_half_day"`
}

type locationDocument struct {
	Latitude  float64    `bson:"latitude"`
	Longitude float64    `bson:"longitude"`
	Time      *time.Time `bson:"time,omitempty"`
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	a := attendance.Attendance{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Status: attendance.StatusFlags{
			IsPresent: d.AttendanceStatus.IsPresent,
			IsLeave:   d.AttendanceStatus.IsLeave,
			IsHalfDay: d.AttendanceStatus.IsHalfDay,
		},
		Location: attendance.GeoPoint{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			Time:      d.Location.Time,
		},
		LocationName: d.LocationName,
		PhotoURL:     d.PhotoURL,
		CreatedAt:    d.CreatedAt,
	}
	if d.Time != nil {
		a.Time = *d.Time
	}
	return a
}

type attendanceRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *database.MongoDB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{collection: db.Collection(database.AttendanceCollection)}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	doc := attendanceDocument{
		ID:         newID(),
		EmployeeID: newAttendance.EmployeeID,
		AttendanceStatus: statusDocument{
			IsPresent: newAttendance.Status.IsPresent,
			IsLeave:   newAttendance.Status.IsLeave,
			IsHalfDay: newAttendance.Status.IsHalfDay,
		},
		Location: locationDocument{
			Latitude:  newAttendance.Location.Latitude,
			Longitude: newAttendance.Location.Longitude,
			Time:      newAttendance.Location.Time,
		},
		LocationName: newAttendance.LocationName,
		PhotoURL:     newAttendance.PhotoURL,
		CreatedAt:    time.Now().UTC(),
	}
	if !newAttendance.Time.IsZero() {
		t := newAttendance.Time.UTC()
		doc.Time = &t
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return attendance.Attendance{}, database.Unavailable("create attendance", err)
	}
	return doc.toEntity(), nil
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, database.Unavailable("list attendance", err)
	}
	defer cursor.Close(ctx)

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, database.Unavailable("decode attendance", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, d := range docs {
		records = append(records, d.toEntity())
	}
	// the event time may live in either field, so order after decoding
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EventTime().Before(records[j].EventTime())
	})
	return records, nil
}
