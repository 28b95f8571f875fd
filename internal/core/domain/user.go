package domain

import "time"

type UserID string

type UserRole string

const (
	RoleStandard UserRole = "STANDARD"
	RoleAdmin    UserRole = "ADMIN"
)

// User is an alumni account. PasswordHash is the bcrypt digest of the
// password and is never serialized.
type User struct {
	ID                  UserID    `json:"id"`
	Username            string    `json:"username"`
	Firstname           string    `json:"firstname"`
	Lastname            string    `json:"lastname"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	Role                UserRole  `json:"role"`
	AvatarURL           string    `json:"avatarUrl,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	Company             string    `json:"company,omitempty"`
	CompanyLocation     string    `json:"companyLocation,omitempty"`
	Industry            string    `json:"industry,omitempty"`
	FieldOfStudy        string    `json:"fieldOfStudy,omitempty"`
	GraduationStartYear int       `json:"graduationStartYear,omitempty"`
	GraduationEndYear   int       `json:"graduationEndYear,omitempty"`
	Location            string    `json:"location,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Profile is the reduced view of a user returned by network search and the
// donation leaderboard.
type Profile struct {
	ID        UserID `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Company   string `json:"company,omitempty"`
}

// Profile returns the reduced view of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Company:   u.Company,
	}
}

// ProfileFilter narrows network filter queries. Zero values mean the
// dimension is not filtered.
type ProfileFilter struct {
	GraduationStartYearFrom int
	GraduationStartYearTo   int
	Location                string
	Industry                string
	FieldOfStudy            string
	Company                 string
}
