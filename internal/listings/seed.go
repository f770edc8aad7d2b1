package listings

import (
	"time"

	"imovia-backend/internal/domain"
)

// seedListings is the fixed set a fresh store starts with when no listings
// record has been persisted yet.
func seedListings() []domain.Listing {
	now := time.Now().UnixMilli()
	return []domain.Listing{
		{
			ID:           "prop1",
			Title:        "Apartamento Moderno no Centro",
			Type:         domain.PropertyTypeApartment,
			Description:  "Lindo apartamento com 2 quartos, sala ampla e cozinha planejada. Localização privilegiada perto de tudo que você precisa.",
			Price:        450000,
			Area:         75,
			City:         "São Paulo",
			Neighborhood: "Centro",
			Images: []string{
				"https://picsum.photos/seed/prop1/800/600",
				"https://picsum.photos/seed/prop1a/800/600",
				"https://picsum.photos/seed/prop1b/800/600",
			},
			ContactName:  "Carlos Silva",
			ContactPhone: "11987654321",
			ContactEmail: "carlos.silva@example.com",
			OwnerID:      "user_123",
			CreatedAt:    now - 100000,
		},
		{
			ID:           "prop2",
			Title:        "Casa Espaçosa com Quintal",
			Type:         domain.PropertyTypeHouse,
			Description:  "Casa com 3 suítes, piscina, churrasqueira e um grande quintal. Perfeita para a sua família. Acabamentos de primeira linha.",
			Price:        980000,
			Area:         220,
			City:         "Rio de Janeiro",
			Neighborhood: "Barra da Tijuca",
			Images: []string{
				"https://picsum.photos/seed/prop2/800/600",
				"https://picsum.photos/seed/prop2a/800/600",
			},
			ContactName:  "Mariana Oliveira",
			ContactPhone: "21912345678",
			ContactEmail: "mariana.o@example.com",
			OwnerID:      "user_456",
			CreatedAt:    now - 200000,
		},
		{
			ID:           "prop3",
			Title:        "Terreno Plano Pronto para Construir",
			Type:         domain.PropertyTypeLand,
			Description:  "Excelente terreno de 500m² em condomínio fechado com segurança 24h. Topografia plana, ideal para construir a casa dos seus sonhos.",
			Price:        250000,
			Area:         500,
			City:         "Belo Horizonte",
			Neighborhood: "Pampulha",
			Images: []string{
				"https://picsum.photos/seed/prop3/800/600",
			},
			ContactName:  "José Pereira",
			ContactPhone: "31999998888",
			ContactEmail: "jose.p@example.com",
			OwnerID:      "user_123",
			CreatedAt:    now,
		},
	}
}
