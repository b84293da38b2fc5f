package store

import "github.com/careerdock/careerdock-be/internal/models"

// DemoUsers are the development fixture accounts. The digests are bcrypt
// hashes of 'password123', 'password456', 'companypass1' and 'companypass2'
// respectively.
func DemoUsers() []models.User {
	return []models.User{
		{
			ID:           "demo-js1",
			Email:        "jobseeker1@example.com",
			PasswordHash: "$2b$10$/txBCT3DEMGewdWc.o2/ROJPmVgWWeKR4Z8.rQTDk2oHbj6567etC",
			Role:         models.RoleJobSeeker,
			DisplayName:  "Alice Smith",
		},
		{
			ID:           "demo-js2",
			Email:        "jobseeker2@example.com",
			PasswordHash: "$2b$10$w8DIuBc0gGiEc8OKto7NMu/aPgc.NIairz9QrL9GKJOE7GRVHR5w.",
			Role:         models.RoleJobSeeker,
			DisplayName:  "Bob Johnson",
		},
		{
			ID:           "demo-emp1",
			Email:        "employer1@example.com",
			PasswordHash: "$2b$10$rvMhZPJJKUNi1OhZrHH7/OoU7Nz.hVumEsesyJ/W/n0x8rYJTYlZG",
			Role:         models.RoleEmployer,
			DisplayName:  "Tech Solutions Inc.",
		},
		{
			ID:           "demo-emp2",
			Email:        "employer2@example.com",
			PasswordHash: "$2b$10$TkSq60xYPetc2hUYPUPabu3Syen4/eCfO8NRNfDGCuJDWJtTLFBty",
			Role:         models.RoleEmployer,
			DisplayName:  "Global Recruiters LLC",
		},
	}
}
