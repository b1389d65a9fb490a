package repository

type StatStore interface {
	CountUsers() (int64, error)
	CountActiveUsers() (int64, error)
	CountBookings() (int64, error)
	CountBookingsByStatus(status string) (int64, error)
	CountDocuments() (int64, error)
}
