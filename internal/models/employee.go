package models

// Employee represents an employee entity with its owned skills.
// PasswordHash is never serialized to clients.
type Employee struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	Seed         string  `json:"seed"`
	Skills       []Skill `json:"skills"`
	PasswordHash string  `json:"-"`
}

// Skill represents a named proficiency owned by exactly one employee.
// SkillName is unique per employee (case-sensitive); SkillLevel is an integer in [0, 100].
type Skill struct {
	ID         int    `json:"id"`
	SkillName  string `json:"skill_name"`
	SkillLevel int    `json:"skill_level"`
	EmployeeID int    `json:"employee_id"`
}
