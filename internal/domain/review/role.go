package review

import "math"

// Papel que a parte exerceu NAQUELE agendamento. Os agregados de
// avaliação são particionados por papel, não por usuário globalmente.
const (
	RoleClient       = "CLIENT"
	RoleProfessional = "PROFESSIONAL"
)

type Stats struct {
	UserID        uint          `json:"user_id"`
	AverageRating float64       `json:"average_rating"`
	TotalReviews  int64         `json:"total_reviews"`
	Distribution  map[int]int64 `json:"rating_distribution"`
}

// Round1 arredonda para uma casa decimal, regra usada em todos os
// campos agregados de rating.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
