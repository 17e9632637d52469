package seed

import "github.com/barbertime/barbertime-api/internal/models"

// Catálogo padrão usado quando banco e espelho local estão vazios ou corrompidos.

func ShopInfo() models.ShopInfo {
	return models.ShopInfo{ID: 1, Name: "BarberTime+"}
}

func Services() []models.Service {
	return []models.Service{
		{
			ID:          "5b4f0c4e-8f21-4a61-9b37-1d2a6c90aa01",
			Name:        "Corte de Cabelo",
			Description: "Corte moderno e estilizado com tesoura e máquina.",
			Price:       50,
			DurationMin: 45,
			Category:    "cabelo",
			Active:      true,
		},
		{
			ID:          "5b4f0c4e-8f21-4a61-9b37-1d2a6c90aa02",
			Name:        "Barba",
			Description: "Modelagem e aparo da barba com toalha quente e navalha.",
			Price:       40,
			DurationMin: 30,
			Category:    "barba",
			Active:      true,
		},
		{
			ID:          "5b4f0c4e-8f21-4a61-9b37-1d2a6c90aa03",
			Name:        "Combo (Corte + Barba)",
			Description: "O pacote completo para um visual impecável.",
			Price:       85,
			DurationMin: 75,
			Category:    "combo",
			Active:      true,
		},
		{
			ID:          "5b4f0c4e-8f21-4a61-9b37-1d2a6c90aa04",
			Name:        "Pezinho",
			Description: "Acabamento profissional do corte, contorno e nuca.",
			Price:       20,
			DurationMin: 15,
			Category:    "cabelo",
			Active:      true,
		},
		{
			ID:          "5b4f0c4e-8f21-4a61-9b37-1d2a6c90aa05",
			Name:        "Hidratação de Barba",
			Description: "Tratamento com óleos especiais para fortalecer e dar brilho à barba.",
			Price:       30,
			DurationMin: 20,
			Category:    "barba",
			Active:      true,
		},
	}
}

func Barbers() []models.Barber {
	return []models.Barber{
		{
			ID:        "9e7d1b7a-3c55-4e02-8d19-7f4b2e81bb01",
			Name:      `Jonas "Navalha"`,
			AvatarURL: "https://i.pravatar.cc/150?u=jonas",
			Active:    true,
		},
		{
			ID:        "9e7d1b7a-3c55-4e02-8d19-7f4b2e81bb02",
			Name:      `Ricardo "Tesoura"`,
			AvatarURL: "https://i.pravatar.cc/150?u=ricardo",
			Active:    true,
		},
		{
			ID:        "9e7d1b7a-3c55-4e02-8d19-7f4b2e81bb03",
			Name:      `Fernando "Estilo"`,
			AvatarURL: "https://i.pravatar.cc/150?u=fernando",
			Active:    true,
		},
		{
			ID:        "9e7d1b7a-3c55-4e02-8d19-7f4b2e81bb04",
			Name:      `Lucas "Máquina"`,
			AvatarURL: "https://i.pravatar.cc/150?u=lucas",
			Active:    true,
		},
	}
}
