package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AdminReport struct {
	TotalReservations   int     `json:"total_reservations"`
	CapacityUtilization string  `json:"capacity_utilization"`
	Revenue             float64 `json:"revenue"`
}
