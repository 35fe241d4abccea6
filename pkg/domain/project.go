package domain

import "time"

// MaxProjectName is the longest accepted project name.
const MaxProjectName = 100

// Project groups forms owned by one user.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Owner        string    `json:"owner"`
	Forms        []string  `json:"forms"`
	TotalViews   int       `json:"totalViews"`
	AverageViews float64   `json:"averageViews"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AddForm links a form to the project once.
func (p *Project) AddForm(formID string) {
	for _, id := range p.Forms {
		if id == formID {
			return
		}
	}
	p.Forms = append(p.Forms, formID)
}

// RemoveForm unlinks a form from the project.
func (p *Project) RemoveForm(formID string) {
	out := p.Forms[:0]
	for _, id := range p.Forms {
		if id != formID {
			out = append(out, id)
		}
	}
	p.Forms = out
}

// Theme is the UI theme preference of a user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are per-user UI settings.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
}

// User is an account of the application.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"passwordHash,omitempty"`
	PhoneNumber  string      `json:"phoneNumber,omitempty"`
	Location     string      `json:"location,omitempty"`
	Preferences  Preferences `json:"preferences"`
	Projects     []string    `json:"projects"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Public returns a copy without credentials, safe to send to clients.
func (u *User) Public() *User {
	c := *u
	c.PasswordHash = ""
	c.Projects = append([]string(nil), u.Projects...)
	return &c
}

// DefaultPreferences are applied to new accounts.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: "en"}
}
