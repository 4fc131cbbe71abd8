package repository

import "github.com/stpnv0/RoomDesk/internal/domain"

// SeedBookings returns the sample booking requests the dashboard starts with.
func SeedBookings() []domain.BookingRequest {
	return []domain.BookingRequest{
		{
			ID:           "BR001",
			RoomID:       "R001",
			RoomName:     "Lab A1",
			RoomType:     "Computer Lab",
			Location:     "Block A, Level 1",
			LecturerName: "Dr. Sarah Johnson",
			Date:         "2024-01-15",
			Time:         "09:00",
			Duration:     "2 hours",
			Status:       domain.BookingStatusPending,
			Purpose:      "Programming Workshop",
		},
		{
			ID:           "BR002",
			RoomID:       "R002",
			RoomName:     "Classroom B3",
			RoomType:     "Lecture Hall",
			Location:     "Block B, Level 3",
			LecturerName: "Prof. Michael Chen",
			Date:         "2024-01-16",
			Time:         "14:00",
			Duration:     "1.5 hours",
			Status:       domain.BookingStatusPending,
			Purpose:      "Database Systems Lecture",
		},
		{
			ID:           "BR003",
			RoomID:       "R003",
			RoomName:     "Auditorium Main",
			RoomType:     "Auditorium",
			Location:     "Main Building",
			LecturerName: "Dr. Emma Wilson",
			Date:         "2024-01-17",
			Time:         "10:00",
			Duration:     "3 hours",
			Status:       domain.BookingStatusPending,
			Purpose:      "Annual Tech Conference",
		},
	}
}

// SeedRooms returns the sample room registry.
func SeedRooms() []domain.Room {
	return []domain.Room{
		{ID: "R001", Name: "Lab A1", Type: domain.RoomTypeLab, Location: "Block A", Level: "Level 1", Capacity: 30},
		{ID: "R002", Name: "Classroom B3", Type: domain.RoomTypeClassroom, Location: "Block B", Level: "Level 3", Capacity: 45},
		{ID: "R003", Name: "Auditorium Main", Type: domain.RoomTypeAuditorium, Location: "Main Building", Level: "Ground Floor", Capacity: 200},
		{ID: "R004", Name: "Lab C2", Type: domain.RoomTypeLab, Location: "Block C", Level: "Level 2", Capacity: 25},
		{ID: "R005", Name: "Classroom A4", Type: domain.RoomTypeClassroom, Location: "Block A", Level: "Level 4", Capacity: 40},
	}
}
