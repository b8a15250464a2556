package bootstrap

import "github.com/m04kA/incubator-booking/internal/domain"

// Response сколько записей было добавлено
type Response struct {
	LocationsSeeded int
	PagesSeeded     int
}

// sampleLocations площадки по умолчанию
func sampleLocations() []domain.Location {
	return []domain.Location{
		{Name: "Clermont-Ferrand", City: "Clermont-Ferrand", Description: "Agence de Clermont"},
		{Name: "Lyon", City: "Lyon", Description: "Agence de Lyon"},
		{Name: "Grenoble", City: "Grenoble", Description: "Agence de Grenoble"},
	}
}

// samplePages страницы по умолчанию
func samplePages() []domain.Page {
	return []domain.Page{
		{Slug: "a-propos", Title: "À propos de l’incubateur", Content: "Cette page présente l’incubateur et sa mission."},
		{Slug: "equipe", Title: "Notre équipe", Content: "Présentation des membres de l’équipe de l’incubateur."},
		{Slug: "actualites", Title: "Actualités", Content: "Retrouvez ici les dernières actualités de l’incubateur."},
	}
}
