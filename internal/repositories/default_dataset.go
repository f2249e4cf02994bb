package repositories

import "github.com/legalneuro/backend/internal/models"

// DefaultDataset returns the dataset used on first run or when the data file is corrupt
func DefaultDataset() *models.Dataset {
	return models.NewDataset(
		models.Category{Name: "Гражданское право", Words: []models.Word{
			{Term: "contract", Translation: "договор"},
			{Term: "obligation", Translation: "обязательство"},
			{Term: "property", Translation: "собственность"},
			{Term: "liability", Translation: "ответственность"},
		}},
		models.Category{Name: "Уголовное право", Words: []models.Word{
			{Term: "crime", Translation: "преступление"},
			{Term: "penalty", Translation: "наказание"},
			{Term: "evidence", Translation: "доказательство"},
			{Term: "suspect", Translation: "подозреваемый"},
		}},
		models.Category{Name: "Международное право", Words: []models.Word{
			{Term: "treaty", Translation: "договор"},
			{Term: "sovereignty", Translation: "суверенитет"},
			{Term: "diplomacy", Translation: "дипломатия"},
			{Term: "sanction", Translation: "санкция"},
		}},
	)
}
