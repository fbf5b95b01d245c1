package domain

// ContentTypePDF is the only upload type the generator accepts.
const ContentTypePDF = "application/pdf"

// UserRole defines what a caller may do with the catalog.
type UserRole string

const (
	RoleGuest   UserRole = "guest"
	RoleStudent UserRole = "student"
	RoleOwner   UserRole = "owner"
	RoleEditor  UserRole = "editor"
	RoleAdmin   UserRole = "admin"
)

// ValidUserRoles lists the roles accepted in tokens.
var ValidUserRoles = map[UserRole]bool{
	RoleGuest:   true,
	RoleStudent: true,
	RoleOwner:   true,
	RoleEditor:  true,
	RoleAdmin:   true,
}

// Difficulty is the author-assigned difficulty of a test.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "fácil"
	DifficultyMedium Difficulty = "medio"
	DifficultyHard   Difficulty = "difícil"
)

// ValidDifficulties lists the accepted difficulty values.
var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// ExportFormat selects the file type of a test export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)
