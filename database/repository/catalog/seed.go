package catalogRepo

import (
	"barberbook/models"

	"github.com/google/uuid"
)

// DefaultCatalog is the reference service list seeded at first startup.
func DefaultCatalog() []models.Service {
	entries := []struct {
		name        string
		price       float64
		duration    int
		description string
	}{
		{"Beard", 15, 20, "Professional beard trim and shaping"},
		{"Haircut & Beard", 40, 45, "Complete haircut with beard service"},
		{"Kid's Haircut", 30, 40, "Haircut for children"},
		{"Men's Haircut", 30, 30, "Classic men's haircut"},
		{"Skin Fade", 35, 30, "Precision skin fade haircut"},
		{"Head Shave", 30, 30, "Complete head shave"},
		{"Beard Shaping/Trim/Shave/Maintenance", 20, 25, "Comprehensive beard care"},
		{"Eyebrow Shaping", 10, 10, "Professional eyebrow grooming"},
		{"Straight Razor Shave", 20, 30, "Traditional straight razor shave"},
		{"Combo (Head Shave + Beard Trim)", 40, 45, "Head shave and beard trim combo"},
		{"Highlights", 70, 90, "Professional hair highlights"},
		{"Keratin Treatment", 70, 60, "Keratin smoothing treatment"},
		{"Brazilian Straightening", 55, 60, "Brazilian hair straightening"},
	}

	services := make([]models.Service, 0, len(entries))
	for _, e := range entries {
		services = append(services, models.Service{
			ID:              uuid.New().String(),
			Name:            e.name,
			Price:           e.price,
			DurationMinutes: e.duration,
			Description:     e.description,
		})
	}
	return services
}
